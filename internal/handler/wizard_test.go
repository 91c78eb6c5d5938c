package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshield-admin-api/internal/model"
	"carshield-admin-api/internal/service"
)

type fakeLookup struct {
	res model.ExistsResult
	err error
}

func (f *fakeLookup) CheckExists(ctx context.Context, c model.DraftClient) (model.ExistsResult, error) {
	return f.res, f.err
}

type fakeClients struct{ err error }

func (f *fakeClients) SaveClient(ctx context.Context, c model.DraftClient) (string, error) {
	return "client-1", f.err
}

func (f *fakeClients) SaveClientVehicle(ctx context.Context, id string, c model.DraftClient, v model.DraftVehicle) (string, error) {
	return "client-1", f.err
}

type fakeOrders struct {
	payloads []model.OrderPayload
	err      error
}

func (f *fakeOrders) CreateOrder(ctx context.Context, p model.OrderPayload) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.payloads = append(f.payloads, p)
	return "order-1", nil
}

type testAPI struct {
	router *chi.Mux
	intake *service.IntakeService
	lookup *fakeLookup
	orders *fakeOrders
}

func newTestAPI() *testAPI {
	lookup := &fakeLookup{}
	orders := &fakeOrders{}
	intake := service.NewIntakeService(lookup, &fakeClients{}, orders)

	r := chi.NewRouter()
	NewWizardHandler(intake).Routes(r)
	return &testAPI{router: r, intake: intake, lookup: lookup, orders: orders}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) start(t *testing.T) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/wizard", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp model.StartWizardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func (a *testAPI) mutate(t *testing.T, id string, muts ...fieldMutation) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, http.MethodPost, "/wizard/"+id+"/fields", applyFieldsRequest{Mutations: muts})
}

func clientMutations() []fieldMutation {
	return []fieldMutation{
		{Target: "client", Field: "first_name", Value: "محمد"},
		{Target: "client", Field: "second_name", Value: "عبدالله"},
		{Target: "client", Field: "third_name", Value: "سعد"},
		{Target: "client", Field: "last_name", Value: "العتيبي"},
		{Target: "client", Field: "phone", Value: "0551234567"},
		{Target: "client", Field: "branch", Value: "الرياض"},
	}
}

func vehicleMutations() []fieldMutation {
	return []fieldMutation{
		{Target: "vehicle", Field: "manufacturer", Value: "تويوتا"},
		{Target: "vehicle", Field: "model", Value: "كامري"},
		{Target: "vehicle", Field: "plate_number", Value: "ABC1234"},
		{Target: "vehicle", Field: "size", Value: "medium"},
	}
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) model.WizardStateResponse {
	t.Helper()
	var resp model.WizardStateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWizardLifecycle(t *testing.T) {
	api := newTestAPI()
	id := api.start(t)

	rec := api.mutate(t, id, clientMutations()...)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPost, "/wizard/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StepVehicle, decodeState(t, rec).Step)

	rec = api.mutate(t, id, vehicleMutations()...)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(t, http.MethodPost, "/wizard/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StepServices, decodeState(t, rec).Step)

	rec = api.do(t, http.MethodPost, "/wizard/"+id+"/services", addServiceRequest{Category: "polish"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.mutate(t, id, fieldMutation{Target: "service", Index: 0, Field: "polish_type", Value: model.PolishInternal})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPost, "/wizard/"+id+"/save", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var final model.FinalSaveResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&final))
	assert.Equal(t, "order-1", final.OrderID)
	require.Len(t, api.orders.payloads, 1)

	// the session is discarded after the final save
	rec = api.do(t, http.MethodGet, "/wizard/"+id+"/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWizardValidationReply(t *testing.T) {
	api := newTestAPI()
	id := api.start(t)

	rec := api.do(t, http.MethodPost, "/wizard/"+id+"/next", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp model.ValidationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_failed", resp.Error)
	assert.NotEmpty(t, resp.Fields)
}

func TestWizardDuplicateFlow(t *testing.T) {
	api := newTestAPI()
	api.lookup.res = model.ExistsResult{Exists: true, Message: "الاسم موجود مسبقاً في النظام"}
	id := api.start(t)

	api.mutate(t, id, clientMutations()...)
	rec := api.do(t, http.MethodPost, "/wizard/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, model.StepClient, state.Step)
	require.NotNil(t, state.Prompt)
	assert.Equal(t, model.CollisionNameOnly, state.Prompt.Title)

	// edits are rejected while the decision is awaited
	rec = api.mutate(t, id, fieldMutation{Target: "client", Field: "first_name", Value: "خالد"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(t, http.MethodPost, "/wizard/"+id+"/duplicate/confirm", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StepVehicle, decodeState(t, rec).Step)
}

func TestWizardDuplicateCancel(t *testing.T) {
	api := newTestAPI()
	api.lookup.res = model.ExistsResult{Exists: true, Message: "رقم الهاتف موجود مسبقاً"}
	id := api.start(t)

	api.mutate(t, id, clientMutations()...)
	api.do(t, http.MethodPost, "/wizard/"+id+"/next", nil)

	rec := api.do(t, http.MethodPost, "/wizard/"+id+"/duplicate/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, model.StepClient, state.Step)
	assert.Nil(t, state.Prompt)
	assert.Equal(t, "محمد", state.State.Client.FirstName)

	rec = api.do(t, http.MethodPost, "/wizard/"+id+"/duplicate/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWizardFailOpenNotification(t *testing.T) {
	api := newTestAPI()
	api.lookup.err = errors.New("lookup down")
	id := api.start(t)

	api.mutate(t, id, clientMutations()...)
	rec := api.do(t, http.MethodPost, "/wizard/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, model.StepVehicle, state.Step)
	require.Len(t, state.Notifications, 1)
	assert.False(t, state.Notifications[0].Blocking)
}

func TestWizardRejectsNonArabicName(t *testing.T) {
	api := newTestAPI()
	id := api.start(t)

	rec := api.mutate(t, id, fieldMutation{Target: "client", Field: "first_name", Value: "John"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWizardHijriProjection(t *testing.T) {
	api := newTestAPI()
	id := api.start(t)

	api.do(t, http.MethodPost, "/wizard/"+id+"/services", addServiceRequest{Category: "protection"})
	rec := api.mutate(t, id,
		fieldMutation{Target: "service", Index: 0, Field: "guarantee_start", Value: "1999-04-17"})
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	require.Len(t, state.Hijri, 1)
	assert.Equal(t, "1 محرم 1420 هـ", state.Hijri[0].StartHijri)
	assert.NotEmpty(t, state.Hijri[0].EndHijri)
}

func TestWizardDiscard(t *testing.T) {
	api := newTestAPI()
	id := api.start(t)

	rec := api.do(t, http.MethodDelete, "/wizard/"+id+"/", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, api.intake.Active())
}

func TestWizardBadRequests(t *testing.T) {
	api := newTestAPI()
	id := api.start(t)

	rec := api.do(t, http.MethodPost, "/wizard/"+id+"/services", addServiceRequest{Category: "detailing"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodDelete, "/wizard/"+id+"/services/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.mutate(t, id, fieldMutation{Target: "client", Field: "shoe_size", Value: "44"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/wizard/missing/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
