package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderDetailOut struct {
	Product struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Price int64  `json:"price"`
	} `json:"product"`
	ChosenOption map[string]any `json:"chosen_option"`
}

type orderOut struct {
	ID           uint             `json:"id"`
	OrderDetails []orderDetailOut `json:"order_details"`
	Status       string           `json:"status"`
	TotalPrice   int64            `json:"total_price"`
}

func TestOrderEndpointsRequireAuth(t *testing.T) {
	env := newTestEnv(t)
	latte := env.seedProduct(t, "Latte", 400)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/order"},
		{http.MethodPost, "/order"},
		{http.MethodGet, "/order/1"},
		{http.MethodPut, "/order/1"},
		{http.MethodDelete, "/order/1"},
	} {
		w := env.do(t, tc.method, tc.path, "", orderBody([]uint{latte.ID}, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
	// Rejected before any data access: nothing was written.
	assert.Zero(t, countOrders(t, env.db))
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "jane@example.com", "Jane", "customer")
	token := env.tokenFor(t, u)
	latte := env.seedProduct(t, "Latte", 400)

	w := env.do(t, http.MethodPost, "/order", token,
		orderBody([]uint{latte.ID}, map[string]any{"milk": 2}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got orderOut
	decodeBody(t, w, &got)
	assert.NotZero(t, got.ID)
	assert.Equal(t, "Waiting", got.Status)
	assert.Equal(t, int64(400), got.TotalPrice)
	require.Len(t, got.OrderDetails, 1)
	assert.Equal(t, latte.ID, got.OrderDetails[0].Product.ID)
	assert.Equal(t, "Latte", got.OrderDetails[0].Product.Name)
	assert.EqualValues(t, 0, got.OrderDetails[0].ChosenOption["consume location"])
	assert.EqualValues(t, 2, got.OrderDetails[0].ChosenOption["milk"])
}

func TestCreateOrderValidation(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "jane@example.com", "Jane", "customer")
	token := env.tokenFor(t, u)
	env.seedProduct(t, "Latte", 400)

	w := env.do(t, http.MethodPost, "/order", token, orderBody(nil, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/order", token, orderBody([]uint{9999}, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Failed creates are no-ops.
	assert.Zero(t, countOrders(t, env.db))
}

func TestUpdateOrder(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "jane@example.com", "Jane", "customer")
	token := env.tokenFor(t, u)
	latte := env.seedProduct(t, "Latte", 400)
	tea := env.seedProduct(t, "Tea", 300)

	w := env.do(t, http.MethodPost, "/order", token, orderBody([]uint{latte.ID}, nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var created orderOut
	decodeBody(t, w, &created)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/order/%d", created.ID), token,
		orderBody([]uint{tea.ID}, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated orderOut
	decodeBody(t, w, &updated)
	require.Len(t, updated.OrderDetails, 1)
	assert.Equal(t, "Tea", updated.OrderDetails[0].Product.Name)
	assert.Equal(t, int64(300), updated.TotalPrice)
}

func TestUpdateNonWaitingOrderIs404(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "jane@example.com", "Jane", "customer")
	token := env.tokenFor(t, u)
	latte := env.seedProduct(t, "Latte", 400)

	w := env.do(t, http.MethodPost, "/order", token, orderBody([]uint{latte.ID}, nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var created orderOut
	decodeBody(t, w, &created)

	require.NoError(t, env.db.Model(&entity.Order{}).Where("id = ?", created.ID).
		Update("status", entity.StatusPreparation).Error)

	// Valid payload; the order is simply not disclosed as editable.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/order/%d", created.ID), token,
		orderBody([]uint{latte.ID}, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// An invalid payload doesn't change that: still 404, never 400.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/order/%d", created.ID), token,
		orderBody([]uint{9999}, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/order/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Detail reads stay visible to the owner in any status.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/order/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "jane@example.com", "Jane", "customer")
	token := env.tokenFor(t, u)
	latte := env.seedProduct(t, "Latte", 400)

	w := env.do(t, http.MethodPost, "/order", token, orderBody([]uint{latte.ID}, nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var created orderOut
	decodeBody(t, w, &created)

	path := fmt.Sprintf("/order/%d", created.ID)
	w = env.do(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersShowsOnlyWaiting(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "jane@example.com", "Jane", "customer")
	token := env.tokenFor(t, u)
	latte := env.seedProduct(t, "Latte", 400)

	w := env.do(t, http.MethodPost, "/order", token, orderBody([]uint{latte.ID}, nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var first orderOut
	decodeBody(t, w, &first)

	w = env.do(t, http.MethodPost, "/order", token, orderBody([]uint{latte.ID}, nil))
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, env.db.Model(&entity.Order{}).Where("id = ?", first.ID).
		Update("status", entity.StatusReady).Error)

	w = env.do(t, http.MethodGet, "/order", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []orderOut
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.NotEqual(t, first.ID, list[0].ID)
}

func TestStaffStatusUpdate(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, "jane@example.com", "Jane", "customer")
	staff := env.createUser(t, "barista@example.com", "Sam", "staff")
	customerToken := env.tokenFor(t, customer)
	staffToken := env.tokenFor(t, staff)
	latte := env.seedProduct(t, "Latte", 400)

	w := env.do(t, http.MethodPost, "/order", customerToken, orderBody([]uint{latte.ID}, nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var created orderOut
	decodeBody(t, w, &created)

	path := fmt.Sprintf("/staff/order/%d/status", created.ID)

	// Customers cannot reach the staff channel.
	w = env.do(t, http.MethodPatch, path, customerToken, statusBody("Preparation"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPatch, path, staffToken, statusBody("Preparation"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The response carries the updated order representation.
	var afterUpdate orderOut
	decodeBody(t, w, &afterUpdate)
	assert.Equal(t, created.ID, afterUpdate.ID)
	assert.Equal(t, "Preparation", afterUpdate.Status)
	require.Len(t, afterUpdate.OrderDetails, 1)
	assert.Equal(t, int64(400), afterUpdate.TotalPrice)

	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, "jane@example.com", env.mailer.sent[0].To)
	assert.Contains(t, env.mailer.sent[0].Body, "Preparation")
	assert.Contains(t, env.mailer.sent[0].Body, fmt.Sprintf("order %d", created.ID))

	// Writing the same status again notifies nobody.
	w = env.do(t, http.MethodPatch, path, staffToken, statusBody("Preparation"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.mailer.sent, 1)

	w = env.do(t, http.MethodPatch, path, staffToken, statusBody("Teleported"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPatch, "/staff/order/9999/status", staffToken, statusBody("Ready"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
