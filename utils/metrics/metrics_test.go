package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := Registry.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			match := true
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					match = false
				}
			}
			if match {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestRecordCounters(t *testing.T) {
	before := counterValue(t, "food_hero_gamification_coupons_claimed_total", map[string]string{"coupon": "grocery_10"})
	RecordCoupon("grocery_10")
	after := counterValue(t, "food_hero_gamification_coupons_claimed_total", map[string]string{"coupon": "grocery_10"})
	assert.Equal(t, before+1, after)

	before = counterValue(t, "food_hero_gamification_points_awarded_total", nil)
	RecordPoints(0)
	RecordPoints(-50)
	RecordPoints(225)
	after = counterValue(t, "food_hero_gamification_points_awarded_total", nil)
	assert.Equal(t, before+225, after)
}

func TestMiddleware_RouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Middleware())
	r.HandleFunc("/requests/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	labels := map[string]string{"method": "GET", "route": "/requests/{id}", "status": "404"}
	before := counterValue(t, "food_hero_http_requests_total", labels)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/requests/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/requests/def", nil))

	assert.Equal(t, before+2, counterValue(t, "food_hero_http_requests_total", labels))
}
