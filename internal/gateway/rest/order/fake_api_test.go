package order_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

type apiPackage struct {
	ID       string  `json:"id"`
	OrderID  string  `json:"orderId,omitempty"`
	LengthCm float64 `json:"lengthCm"`
	HeightCm float64 `json:"heightCm"`
	WidthCm  float64 `json:"widthCm"`
	WeightLb float64 `json:"weightLb"`
	Content  string  `json:"content"`
}

type apiOrder struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	Status          string       `json:"status"`
	PickupAddress   string       `json:"pickupAddress"`
	ScheduledDate   string       `json:"scheduledDate"`
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	DeliveryAddress string       `json:"deliveryAddress"`
	Department      string       `json:"department"`
	Municipality    string       `json:"municipality"`
	ReferencePoint  string       `json:"referencePoint"`
	Instructions    string       `json:"instructions"`
	CreatedAt       string       `json:"createdAt"`
	UpdatedAt       string       `json:"updatedAt"`
	Packages        []apiPackage `json:"packages"`
}

// fakeAPI - сервер заказов в памяти с теми же маршрутами и кодами ответов.
type fakeAPI struct {
	mu sync.Mutex

	seq    int
	orders map[string]*apiOrder

	token         string
	omitPackageID bool
	failNext      map[string]int // метод -> сколько ответов 503 отдать
	calls         map[string]int
	requestIDs    []string
	authHeaders   []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	api := &fakeAPI{
		orders:   make(map[string]*apiOrder),
		token:    "test-token",
		failNext: make(map[string]int),
		calls:    make(map[string]int),
	}

	router := mux.NewRouter()
	router.HandleFunc("/orders", api.listOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders", api.createOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/{id}", api.getOrder).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id}/status", api.updateStatus).Methods(http.MethodPatch)
	router.HandleFunc("/orders/{id}/packages", api.addPackage).Methods(http.MethodPost)
	router.HandleFunc("/orders/{id}/packages/{packageId}", api.deletePackage).Methods(http.MethodDelete)

	server := httptest.NewServer(api.middleware(router))
	t.Cleanup(server.Close)

	return api, server
}

func (a *fakeAPI) failNextCalls(method string, n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failNext[method] = n
}

func (a *fakeAPI) callCount(method string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[method]
}

func (a *fakeAPI) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		a.calls[r.Method]++
		a.requestIDs = append(a.requestIDs, r.Header.Get("X-Request-ID"))
		a.authHeaders = append(a.authHeaders, r.Header.Get("Authorization"))
		if a.failNext[r.Method] > 0 {
			a.failNext[r.Method]--
			a.mu.Unlock()
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
			return
		}
		a.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer "+a.token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *fakeAPI) listOrders(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	list := make([]apiOrder, 0, len(a.orders))
	for i := 1; i <= a.seq; i++ {
		if o, ok := a.orders["ord-"+strconv.Itoa(i)]; ok {
			list = append(list, *o)
		}
	}
	writeJSON(w, http.StatusOK, list)
}

func (a *fakeAPI) getOrder(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	o, ok := a.orders[mux.Vars(r)["id"]]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Order not found"})
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (a *fakeAPI) createOrder(w http.ResponseWriter, r *http.Request) {
	var o apiOrder
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad json"})
		return
	}
	if o.Email == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"message": []string{"email must be an email", "phone should not be empty"},
		})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.seq++
	now := time.Now().UTC().Format(time.RFC3339)
	o.ID = "ord-" + strconv.Itoa(a.seq)
	o.UserID = "user-1"
	o.Status = "PENDING"
	o.CreatedAt, o.UpdatedAt = now, now
	o.Packages = []apiPackage{}
	a.orders[o.ID] = &o

	writeJSON(w, http.StatusCreated, o)
}

func (a *fakeAPI) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad json"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	o, ok := a.orders[mux.Vars(r)["id"]]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Order not found"})
		return
	}
	if o.Status == "DELIVERED" && req.Status == "PENDING" {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "order already delivered"})
		return
	}
	o.Status = req.Status
	o.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	writeJSON(w, http.StatusOK, o)
}

func (a *fakeAPI) addPackage(w http.ResponseWriter, r *http.Request) {
	var p apiPackage
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad json"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	orderID := mux.Vars(r)["id"]
	o, ok := a.orders[orderID]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Order not found"})
		return
	}

	a.seq++
	p.ID = "pkg-" + strconv.Itoa(a.seq)
	p.OrderID = orderID
	o.Packages = append(o.Packages, p)

	if a.omitPackageID {
		p.OrderID = ""
	}
	writeJSON(w, http.StatusCreated, p)
}

func (a *fakeAPI) deletePackage(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	o, ok := a.orders[mux.Vars(r)["id"]]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Order not found"})
		return
	}

	packageID := mux.Vars(r)["packageId"]
	for i, p := range o.Packages {
		if p.ID == packageID {
			o.Packages = append(o.Packages[:i], o.Packages[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Package not found"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
