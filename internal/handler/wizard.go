package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"carshield-admin-api/internal/hijri"
	"carshield-admin-api/internal/model"
	"carshield-admin-api/internal/service"
	"carshield-admin-api/internal/wizard"
)

var validate = validator.New()

type WizardHandler struct {
	intake *service.IntakeService
}

func NewWizardHandler(intake *service.IntakeService) *WizardHandler {
	return &WizardHandler{intake: intake}
}

// Routes mounts the wizard endpoints on a chi router.
func (h *WizardHandler) Routes(r chi.Router) {
	r.Post("/wizard", h.Create)
	r.Route("/wizard/{id}", func(r chi.Router) {
		r.Get("/", h.State)
		r.Delete("/", h.Discard)
		r.Post("/fields", h.ApplyFields)
		r.Post("/services", h.AddService)
		r.Delete("/services/{index}", h.RemoveService)
		r.Post("/next", h.Next)
		r.Post("/previous", h.Previous)
		r.Post("/save", h.Save)
		r.Post("/duplicate/confirm", h.ConfirmDuplicate)
		r.Post("/duplicate/cancel", h.CancelDuplicate)
	})
}

// Create opens a new intake session.
func (h *WizardHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.intake.Start()
	writeJSON(w, http.StatusCreated, model.StartWizardResponse{SessionID: sess.ID})
}

// State returns the wizard snapshot for the step renderers. Notifications
// are drained on every read.
func (h *WizardHandler) State(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse(sess))
}

func (h *WizardHandler) stateResponse(sess *wizard.Session) model.WizardStateResponse {
	state := sess.Wizard.Snapshot()
	state.Notifications = nil

	resp := model.WizardStateResponse{
		SessionID:     sess.ID,
		Step:          state.Step,
		StepName:      state.Step.String(),
		State:         state,
		Notifications: sess.Wizard.DrainNotifications(),
	}
	if state.Pending != nil {
		p := wizard.Prompt(state.Pending.Kind)
		resp.Prompt = &p
	}
	for i, svc := range state.Services {
		if svc.Guarantee == nil {
			continue
		}
		resp.Hijri = append(resp.Hijri, model.GuaranteeDisplay{
			ServiceIndex: i,
			StartHijri:   hijri.FormatString(svc.Guarantee.StartDate),
			EndHijri:     hijri.FormatString(svc.Guarantee.EndDate),
		})
	}
	return resp
}

// Discard drops the session and all entered data.
func (h *WizardHandler) Discard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.intake.Discard(sess.ID)
	w.WriteHeader(http.StatusNoContent)
}

type fieldMutation struct {
	Target string `json:"target" validate:"required,oneof=client vehicle service"`
	Index  int    `json:"index"`
	Field  string `json:"field" validate:"required"`
	Value  string `json:"value"`
}

type applyFieldsRequest struct {
	Mutations []fieldMutation `json:"mutations" validate:"required,min=1,dive"`
}

// ApplyFields applies a batch of field edits to the session.
func (h *WizardHandler) ApplyFields(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req applyFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	wz := sess.Wizard
	for _, m := range req.Mutations {
		var err error
		switch m.Target {
		case "client":
			err = wz.SetClientField(m.Field, m.Value)
		case "vehicle":
			err = wz.SetVehicleField(m.Field, m.Value)
		case "service":
			if m.Field == "category" {
				err = wz.SetServiceCategory(m.Index, model.ServiceCategory(m.Value))
			} else {
				err = wz.SetServiceField(m.Index, model.ServiceField(m.Field), m.Value)
			}
		}
		if err != nil {
			h.writeWizardError(w, sess, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.stateResponse(sess))
}

type addServiceRequest struct {
	Category string `json:"category" validate:"required,oneof=protection insulator polish additions"`
}

// AddService appends a service draft to the session.
func (h *WizardHandler) AddService(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req addServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if _, err := sess.Wizard.AddService(model.ServiceCategory(req.Category)); err != nil {
		h.writeWizardError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse(sess))
}

// RemoveService deletes a service draft by its index.
func (h *WizardHandler) RemoveService(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index", "service index must be a number")
		return
	}
	if err := sess.Wizard.RemoveService(index); err != nil {
		h.writeWizardError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse(sess))
}

// Next advances past the current step: client steps consult the duplicate
// guard first, vehicle steps run the intermediate commit.
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var err error
	switch sess.Wizard.Snapshot().Step {
	case model.StepClient:
		err = sess.Wizard.NextFromClient(r.Context())
	case model.StepVehicle:
		err = sess.Wizard.NextFromVehicle(r.Context())
	default:
		writeError(w, http.StatusConflict, "wrong_step", "the services step is finished with save")
		return
	}
	if err != nil {
		h.writeWizardError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse(sess))
}

// Previous moves back one step without validation.
func (h *WizardHandler) Previous(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Wizard.Previous(); err != nil {
		h.writeWizardError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse(sess))
}

// Save is step-sensitive: at steps one and two it is an intermediate commit
// that keeps the wizard in place; at step three it builds and submits the
// full aggregate payload and closes the session.
func (h *WizardHandler) Save(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	switch sess.Wizard.Snapshot().Step {
	case model.StepClient:
		if err := sess.Wizard.SaveClient(r.Context()); err != nil {
			h.writeWizardError(w, sess, err)
			return
		}
	case model.StepVehicle:
		if err := sess.Wizard.SaveVehicle(r.Context()); err != nil {
			h.writeWizardError(w, sess, err)
			return
		}
	case model.StepServices:
		orderID, err := sess.Wizard.FinalSave(r.Context())
		if err != nil {
			h.writeWizardError(w, sess, err)
			return
		}
		h.intake.Discard(sess.ID)
		writeJSON(w, http.StatusCreated, model.FinalSaveResponse{OrderID: orderID})
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse(sess))
}

// ConfirmDuplicate replays the pending action with the retained draft.
func (h *WizardHandler) ConfirmDuplicate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Wizard.ConfirmDuplicate(r.Context()); err != nil {
		h.writeWizardError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse(sess))
}

// CancelDuplicate discards the pending decision, keeping the entered values.
func (h *WizardHandler) CancelDuplicate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Wizard.CancelDuplicate(); err != nil {
		h.writeWizardError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse(sess))
}

func (h *WizardHandler) session(w http.ResponseWriter, r *http.Request) (*wizard.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, ok := h.intake.Session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session_not_found", "no such wizard session")
		return nil, false
	}
	return sess, true
}

func (h *WizardHandler) writeWizardError(w http.ResponseWriter, sess *wizard.Session, err error) {
	switch {
	case errors.Is(err, wizard.ErrValidationFailed):
		state := sess.Wizard.Snapshot()
		resp := model.ValidationResponse{Error: "validation_failed"}
		switch state.Step {
		case model.StepClient:
			resp.Fields = state.ClientErrors
		case model.StepVehicle:
			resp.Fields = state.VehicleErrors
		case model.StepServices:
			resp.ByItem = state.ServiceErrors
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.Is(err, wizard.ErrDecisionPending),
		errors.Is(err, wizard.ErrBusy),
		errors.Is(err, wizard.ErrNoPendingDecision),
		errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrSuperseded):
		writeError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, wizard.ErrCommitFailed):
		writeError(w, http.StatusBadGateway, "commit_failed", err.Error())
	case errors.Is(err, wizard.ErrNonArabicInput),
		errors.Is(err, wizard.ErrInvalidValue),
		errors.Is(err, wizard.ErrUnknownField),
		errors.Is(err, wizard.ErrNoSuchService),
		errors.Is(err, wizard.ErrNoGuarantee),
		errors.Is(err, wizard.ErrEndDateDerived):
		writeError(w, http.StatusBadRequest, "invalid_field", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}
