package constant

type UserRole string

const (
	UserRoleHero      UserRole = "hero"
	UserRoleRequester UserRole = "requester"
)

type TransportMethod string

const (
	TransportCar     TransportMethod = "car"
	TransportBike    TransportMethod = "bike"
	TransportWalking TransportMethod = "walking"
	TransportTransit TransportMethod = "transit"
)
