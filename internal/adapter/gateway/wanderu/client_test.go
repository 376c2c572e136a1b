package wanderu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
)

const tripsPayload = `{
	"trips": [
		{"provider": "FlixBus", "departure_time": "8:30 AM", "arrival_time": "1:15 PM", "price": "$35.00"},
		{"provider": "Greyhound", "departure_time": "11:00 AM", "arrival_time": "3:45 PM", "price": "$38.00"},
		{"provider": "OurBus", "departure_time": "10:15 PM", "arrival_time": "2:50 AM (+1)", "price": "$29.50"}
	]
}`

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL}, logger.Nop())
}

func TestSearchBuses(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(tripsPayload))
	}))

	options, err := client.SearchBuses(context.Background(), "Ithaca", "New York", "2026-03-10", "", domain.BusSortCheapest)

	require.NoError(t, err)
	assert.Equal(t, []string{"Ithaca"}, gotQuery["from"])
	assert.Equal(t, []string{"New York"}, gotQuery["to"])
	assert.Equal(t, []string{"2026-03-10"}, gotQuery["date"])
	assert.Equal(t, []string{"cheapest"}, gotQuery["sort"])

	require.Len(t, options, 3)
	assert.Equal(t, "FlixBus", options[0].Provider)
	assert.Equal(t, "$35.00", options[0].Price)
	assert.Equal(t, "2:50 AM (+1)", options[2].ArrivalTime)
}

func TestSearchBuses_PreferredTimeFilter(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(tripsPayload))
	}))

	// With an hour of grace after a 9:30 AM arrival, the 8:30 AM departure
	// is out of reach; only later buses remain.
	options, err := client.SearchBuses(context.Background(), "Ithaca", "New York", "2026-03-10", "9:30 AM", domain.BusSortEarliest)

	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "Greyhound", options[0].Provider)
	assert.Equal(t, "OurBus", options[1].Provider)
}

func TestSearchBuses_AllFilteredIsNoData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"trips": [{"provider": "FlixBus", "departure_time": "6:00 AM", "arrival_time": "9:00 AM", "price": "$20.00"}]}`))
	}))

	_, err := client.SearchBuses(context.Background(), "Ithaca", "New York", "2026-03-10", "11:00 PM", domain.BusSortLatest)

	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestSearchBuses_EmptyIsNoData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"trips": []}`))
	}))

	_, err := client.SearchBuses(context.Background(), "Ithaca", "Nowhere", "2026-03-10", "", domain.BusSortCheapest)

	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestSearchBuses_CapsResults(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"trips": [` +
			`{"provider": "A", "departure_time": "8:00 AM", "arrival_time": "9:00 AM", "price": "$10.00"},` +
			`{"provider": "B", "departure_time": "8:10 AM", "arrival_time": "9:10 AM", "price": "$10.00"},` +
			`{"provider": "C", "departure_time": "8:20 AM", "arrival_time": "9:20 AM", "price": "$10.00"},` +
			`{"provider": "D", "departure_time": "8:30 AM", "arrival_time": "9:30 AM", "price": "$10.00"},` +
			`{"provider": "E", "departure_time": "8:40 AM", "arrival_time": "9:40 AM", "price": "$10.00"},` +
			`{"provider": "F", "departure_time": "8:50 AM", "arrival_time": "9:50 AM", "price": "$10.00"},` +
			`{"provider": "G", "departure_time": "9:00 AM", "arrival_time": "10:00 AM", "price": "$10.00"},` +
			`{"provider": "H", "departure_time": "9:10 AM", "arrival_time": "10:10 AM", "price": "$10.00"},` +
			`{"provider": "I", "departure_time": "9:20 AM", "arrival_time": "10:20 AM", "price": "$10.00"},` +
			`{"provider": "J", "departure_time": "9:30 AM", "arrival_time": "10:30 AM", "price": "$10.00"},` +
			`{"provider": "K", "departure_time": "9:40 AM", "arrival_time": "10:40 AM", "price": "$10.00"}` +
			`]}`))
	}))

	options, err := client.SearchBuses(context.Background(), "Ithaca", "New York", "2026-03-10", "", domain.BusSortCheapest)

	require.NoError(t, err)
	assert.Len(t, options, maxResults)
}

func TestSearchBuses_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.SearchBuses(context.Background(), "Ithaca", "New York", "2026-03-10", "", domain.BusSortCheapest)

	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))
}

func TestFilterByDeparture_UnparseablePreferredTimePassesAll(t *testing.T) {
	trips := []domain.BusOption{
		{Provider: "A", DepartureTime: "8:00 AM"},
	}

	kept := filterByDeparture(trips, "around noon")

	assert.Len(t, kept, 1)
}
