// Package wizard implements the guided three-step intake flow: client data,
// vehicle data, then one or more services with their guarantees. A Wizard is
// a state machine over model.WizardState; the only suspending transition is
// the duplicate-client lookup consulted before a client draft is frozen.
package wizard

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"carshield-admin-api/internal/guarantee"
	"carshield-admin-api/internal/model"
	"carshield-admin-api/internal/normalize"
	"carshield-admin-api/internal/variant"
)

// Notification texts surfaced to the operator.
const (
	msgLookupFailed      = "تعذر التحقق من تكرار العميل، ستتم المتابعة"
	msgClientSaved       = "تم حفظ بيانات العميل"
	msgVehicleSaved      = "تم حفظ بيانات العميل والمركبة"
	msgClientSaveFailed  = "فشل حفظ بيانات العميل، حاول مرة أخرى"
	msgVehicleSaveFailed = "فشل حفظ بيانات المركبة، حاول مرة أخرى"
	msgOrderCommitFailed = "فشل حفظ الطلب، حاول مرة أخرى"
)

// Wizard owns one intake session's state. All exported methods are safe for
// concurrent use; while the duplicate lookup is in flight every other
// transition is rejected, so at most one lookup is pending per session.
type Wizard struct {
	mu       sync.Mutex
	lookup   ClientLookup
	clients  ClientStore
	orders   OrderStore
	state    model.WizardState
	epoch    uint64
	checking bool
}

// New returns a wizard positioned on the client step with an empty state.
func New(lookup ClientLookup, clients ClientStore, orders OrderStore) *Wizard {
	return &Wizard{
		lookup:  lookup,
		clients: clients,
		orders:  orders,
		state:   model.WizardState{Step: model.StepClient},
	}
}

// Snapshot returns a copy of the current state. The wizard retains exclusive
// ownership of the original; callers may not mutate shared references.
func (w *Wizard) Snapshot() model.WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.state
	s.Services = make([]model.DraftService, len(w.state.Services))
	for i, svc := range w.state.Services {
		if svc.Guarantee != nil {
			g := *svc.Guarantee
			svc.Guarantee = &g
		}
		if svc.Price != nil {
			p := *svc.Price
			svc.Price = &p
		}
		s.Services[i] = svc
	}
	if w.state.FrozenClient != nil {
		c := *w.state.FrozenClient
		s.FrozenClient = &c
	}
	if w.state.FrozenVehicle != nil {
		v := *w.state.FrozenVehicle
		s.FrozenVehicle = &v
	}
	if w.state.Pending != nil {
		p := *w.state.Pending
		s.Pending = &p
	}
	if w.state.ClientErrors != nil {
		s.ClientErrors = append([]model.FieldError(nil), w.state.ClientErrors...)
	}
	if w.state.VehicleErrors != nil {
		s.VehicleErrors = append([]model.FieldError(nil), w.state.VehicleErrors...)
	}
	if w.state.ServiceErrors != nil {
		s.ServiceErrors = make(map[int][]model.FieldError, len(w.state.ServiceErrors))
		for i, errs := range w.state.ServiceErrors {
			s.ServiceErrors[i] = append([]model.FieldError(nil), errs...)
		}
	}
	s.Notifications = append([]model.Notification(nil), w.state.Notifications...)
	return s
}

// DrainNotifications returns and clears the accumulated notifications.
func (w *Wizard) DrainNotifications() []model.Notification {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := w.state.Notifications
	w.state.Notifications = nil
	return n
}

// ---------- step transitions ----------

// NextFromClient validates the client fields, consults the duplicate guard,
// and on a clean result freezes the draft and advances to the vehicle step.
// A collision parks the machine in the awaiting-decision sub-state instead.
func (w *Wizard) NextFromClient(ctx context.Context) error {
	return w.clientAction(ctx, model.ActionNext)
}

// SaveClient runs the same validation and guard flow but persists the frozen
// draft instead of advancing.
func (w *Wizard) SaveClient(ctx context.Context) error {
	return w.clientAction(ctx, model.ActionSave)
}

func (w *Wizard) clientAction(ctx context.Context, action model.PendingAction) error {
	w.mu.Lock()
	if w.state.Step != model.StepClient {
		w.mu.Unlock()
		return ErrWrongStep
	}
	if w.checking {
		w.mu.Unlock()
		return ErrBusy
	}
	if w.state.Pending != nil {
		w.mu.Unlock()
		return ErrDecisionPending
	}
	if errs := ValidateClient(w.state.Client); len(errs) > 0 {
		w.state.ClientErrors = errs
		w.mu.Unlock()
		return ErrValidationFailed
	}
	w.state.ClientErrors = nil

	draft := w.state.Client
	draft.Phone, _ = normalize.Phone(draft.Phone)
	if draft.SecondPhone != "" {
		draft.SecondPhone, _ = normalize.Phone(draft.SecondPhone)
	}
	epoch := w.epoch
	w.checking = true
	w.mu.Unlock()

	// The lookup is the one suspending collaborator; the lock is released
	// while it runs and every other transition is rejected via w.checking.
	res, err := w.lookup.CheckExists(ctx, draft)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.checking = false
	return w.finishLookup(ctx, epoch, action, draft, res, err)
}

// finishLookup applies a lookup result under the lock. A result that arrives
// after the pending context was discarded (epoch moved on) is dropped.
func (w *Wizard) finishLookup(ctx context.Context, epoch uint64, action model.PendingAction, draft model.DraftClient, res model.ExistsResult, lookupErr error) error {
	if epoch != w.epoch || w.state.Step != model.StepClient {
		return ErrSuperseded
	}
	if lookupErr != nil {
		// Fail open: a transient backend error never blocks the operator.
		w.notify(model.NoticeWarning, false, msgLookupFailed)
		return w.proceedClient(ctx, action, draft)
	}
	if res.Exists {
		w.state.Pending = &model.PendingDecision{
			Action:  action,
			Draft:   draft,
			Kind:    Classify(res.Message),
			Message: res.Message,
		}
		return nil
	}
	return w.proceedClient(ctx, action, draft)
}

func (w *Wizard) proceedClient(ctx context.Context, action model.PendingAction, draft model.DraftClient) error {
	if action == model.ActionNext {
		w.state.FrozenClient = &draft
		w.state.Step = model.StepVehicle
		return nil
	}

	id, err := w.clients.SaveClient(ctx, draft)
	if err != nil {
		w.notify(model.NoticeError, true, msgClientSaveFailed)
		return ErrCommitFailed
	}
	w.state.ClientID = id
	w.state.FrozenClient = &draft
	w.notify(model.NoticeInfo, false, msgClientSaved)
	return nil
}

// ConfirmDuplicate replays the action retained when the collision was
// reported, using the originally entered draft, then clears the sub-state.
func (w *Wizard) ConfirmDuplicate(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Pending == nil {
		return ErrNoPendingDecision
	}
	p := *w.state.Pending
	w.state.Pending = nil
	return w.proceedClient(ctx, p.Action, p.Draft)
}

// CancelDuplicate discards the pending context, returning to the client step
// with all entered values intact. Advancing the epoch makes any lookup
// response still in flight stale.
func (w *Wizard) CancelDuplicate() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Pending == nil {
		return ErrNoPendingDecision
	}
	w.state.Pending = nil
	w.epoch++
	return nil
}

// NextFromVehicle validates the vehicle fields, persists the merged
// client + vehicle payload as an intermediate commit, and advances.
func (w *Wizard) NextFromVehicle(ctx context.Context) error {
	return w.vehicleAction(ctx, true)
}

// SaveVehicle performs the same intermediate commit without advancing.
func (w *Wizard) SaveVehicle(ctx context.Context) error {
	return w.vehicleAction(ctx, false)
}

func (w *Wizard) vehicleAction(ctx context.Context, advance bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Step != model.StepVehicle {
		return ErrWrongStep
	}
	if errs := ValidateVehicle(w.state.Vehicle); len(errs) > 0 {
		w.state.VehicleErrors = errs
		return ErrValidationFailed
	}
	w.state.VehicleErrors = nil

	vehicle := w.state.Vehicle
	vehicle.PlateNumber, _ = normalize.Plate(vehicle.PlateNumber)

	client := w.state.Client
	if w.state.FrozenClient != nil {
		client = *w.state.FrozenClient
	}

	id, err := w.clients.SaveClientVehicle(ctx, w.state.ClientID, client, vehicle)
	if err != nil {
		w.notify(model.NoticeError, true, msgVehicleSaveFailed)
		return ErrCommitFailed
	}
	w.state.ClientID = id
	w.state.FrozenVehicle = &vehicle

	if advance {
		w.state.Step = model.StepServices
	} else {
		w.notify(model.NoticeInfo, false, msgVehicleSaved)
	}
	return nil
}

// Previous moves back one step. No validation runs and no frozen draft is
// discarded; re-advancing re-freezes a fresh snapshot from current values.
func (w *Wizard) Previous() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state.Step {
	case model.StepVehicle:
		w.state.Step = model.StepClient
	case model.StepServices:
		w.state.Step = model.StepVehicle
	default:
		return ErrWrongStep
	}
	return nil
}

// FinalSave validates the services array, merges the frozen drafts with it,
// and hands the complete aggregate to the order store. On success the caller
// discards the session.
func (w *Wizard) FinalSave(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Step != model.StepServices {
		return "", ErrWrongStep
	}
	if byItem := ValidateServices(w.state.Services); byItem != nil {
		w.state.ServiceErrors = byItem
		return "", ErrValidationFailed
	}
	w.state.ServiceErrors = nil

	orderID, err := w.orders.CreateOrder(ctx, w.buildPayload())
	if err != nil {
		w.notify(model.NoticeError, true, msgOrderCommitFailed)
		return "", ErrCommitFailed
	}
	return orderID, nil
}

func (w *Wizard) buildPayload() model.OrderPayload {
	client := w.state.Client
	if w.state.FrozenClient != nil {
		client = *w.state.FrozenClient
	}
	vehicle := w.state.Vehicle
	if w.state.FrozenVehicle != nil {
		vehicle = *w.state.FrozenVehicle
	}

	services := make([]model.OrderService, len(w.state.Services))
	for i, svc := range w.state.Services {
		services[i] = toOrderService(svc)
	}
	return model.OrderPayload{
		ClientID: w.state.ClientID,
		Client:   client,
		Vehicle:  vehicle,
		Services: services,
	}
}

// toOrderService flattens a draft service for transmission, normalizing all
// dates to UTC timestamps.
func toOrderService(svc model.DraftService) model.OrderService {
	out := model.OrderService{
		Category:           svc.Category,
		ProtectionFinish:   svc.ProtectionFinish,
		ProtectionSize:     svc.ProtectionSize,
		ProtectionCoverage: svc.ProtectionCoverage,
		ProtectionColor:    svc.ProtectionColor,
		InsulatorType:      svc.InsulatorType,
		InsulatorCoverage:  svc.InsulatorCoverage,
		PolishType:         svc.PolishType,
		PolishLevel:        svc.PolishLevel,
		AdditionType:       svc.AdditionType,
		WashScope:          svc.WashScope,
		DealDetails:        svc.DealDetails,
		ServiceDate:        parseDate(svc.ServiceDate),
	}
	if svc.Price != nil {
		p := *svc.Price
		out.Price = &p
	}
	if g := svc.Guarantee; g != nil {
		out.GuaranteeDuration = g.Duration
		out.GuaranteeStart = parseDate(g.StartDate)
		out.GuaranteeEnd = parseDate(g.EndDate)
		out.GuaranteeTerms = g.Terms
		out.GuaranteeNotes = g.Notes
	}
	return out
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(guarantee.DateLayout, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// ---------- field mutators ----------

// guardMutable rejects mutations while a duplicate decision is awaited or a
// lookup is in flight. Confirm and cancel are the only accepted inputs then.
func (w *Wizard) guardMutable() error {
	if w.checking {
		return ErrBusy
	}
	if w.state.Pending != nil {
		return ErrDecisionPending
	}
	return nil
}

// SetClientField applies one client field edit. Name components refuse
// non-Arabic characters at input time, not only at submit; phones are folded
// to the normalized local format as soon as they fit it.
func (w *Wizard) SetClientField(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.guardMutable(); err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch field {
	case "first_name", "second_name", "third_name", "last_name":
		if value != "" && !normalize.IsArabicName(value) {
			return ErrNonArabicInput
		}
		switch field {
		case "first_name":
			w.state.Client.FirstName = value
		case "second_name":
			w.state.Client.SecondName = value
		case "third_name":
			w.state.Client.ThirdName = value
		case "last_name":
			w.state.Client.LastName = value
		}
	case "phone", "second_phone":
		if normalized, ok := normalize.Phone(value); ok {
			value = normalized
		}
		if field == "phone" {
			w.state.Client.Phone = value
		} else {
			w.state.Client.SecondPhone = value
		}
	case "email":
		w.state.Client.Email = value
	case "category":
		w.state.Client.Category = model.ClientCategory(value)
	case "branch":
		w.state.Client.Branch = value
	default:
		return ErrUnknownField
	}
	return nil
}

// SetVehicleField applies one vehicle field edit. The plate is validated at
// submit; raw input (including the optional 8th slot) is kept while typing.
func (w *Wizard) SetVehicleField(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.guardMutable(); err != nil {
		return err
	}

	switch field {
	case "manufacturer":
		w.state.Vehicle.Manufacturer = strings.TrimSpace(value)
	case "model":
		w.state.Vehicle.Model = strings.TrimSpace(value)
	case "color":
		w.state.Vehicle.Color = strings.TrimSpace(value)
	case "plate_number":
		w.state.Vehicle.PlateNumber = value
	case "size":
		w.state.Vehicle.Size = model.VehicleSize(value)
	default:
		return ErrUnknownField
	}
	return nil
}

// AddService appends a service initialized for the category and returns its
// index.
func (w *Wizard) AddService(category model.ServiceCategory) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.guardMutable(); err != nil {
		return 0, err
	}

	w.state.Services = append(w.state.Services, variant.NewService(category))
	return len(w.state.Services) - 1, nil
}

// RemoveService deletes a service from the draft list.
func (w *Wizard) RemoveService(index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.guardMutable(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.state.Services) {
		return ErrNoSuchService
	}
	w.state.Services = append(w.state.Services[:index], w.state.Services[index+1:]...)
	if len(w.state.ServiceErrors) > 0 {
		// Errors for later services shift down with their service.
		shifted := make(map[int][]model.FieldError, len(w.state.ServiceErrors))
		for i, errs := range w.state.ServiceErrors {
			switch {
			case i == index:
			case i > index:
				shifted[i-1] = errs
			default:
				shifted[i] = errs
			}
		}
		w.state.ServiceErrors = shifted
	}
	return nil
}

// SetServiceCategory switches a service's category, clearing every variant
// sub-field and applying the guarantee rule.
func (w *Wizard) SetServiceCategory(index int, category model.ServiceCategory) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.guardMutable(); err != nil {
		return err
	}
	svc, err := w.service(index)
	if err != nil {
		return err
	}
	variant.ApplyCategoryChange(svc, category)
	return nil
}

// SetServiceField applies one service field edit: variant sub-fields go
// through the resolver (which clears dependents), shared and guarantee
// fields are handled here.
func (w *Wizard) SetServiceField(index int, field model.ServiceField, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.guardMutable(); err != nil {
		return err
	}
	svc, err := w.service(index)
	if err != nil {
		return err
	}

	if variant.IsVariantField(field) {
		variant.ApplyFieldChange(svc, field, value)
		return nil
	}

	switch field {
	case model.FieldDealDetails:
		svc.DealDetails = value
	case model.FieldPrice:
		if value == "" {
			svc.Price = nil
			return nil
		}
		price, err := strconv.ParseFloat(normalize.Digits(value), 64)
		if err != nil {
			return ErrInvalidValue
		}
		svc.Price = &price
	case model.FieldServiceDate:
		svc.ServiceDate = value
	case model.FieldGuaranteeDuration, model.FieldGuaranteeStart,
		model.FieldGuaranteeEnd, model.FieldGuaranteeTerms, model.FieldGuaranteeNotes:
		return w.setGuaranteeField(svc, field, value)
	default:
		return ErrUnknownField
	}
	return nil
}

// setGuaranteeField edits the guarantee sub-entity. The end date is derived
// and recomputed on every duration or start change; it is never settable.
func (w *Wizard) setGuaranteeField(svc *model.DraftService, field model.ServiceField, value string) error {
	g := svc.Guarantee
	if g == nil {
		return ErrNoGuarantee
	}

	switch field {
	case model.FieldGuaranteeDuration:
		g.Duration = value
		guarantee.Recompute(g)
	case model.FieldGuaranteeStart:
		g.StartDate = value
		guarantee.Recompute(g)
	case model.FieldGuaranteeEnd:
		return ErrEndDateDerived
	case model.FieldGuaranteeTerms:
		g.Terms = value
	case model.FieldGuaranteeNotes:
		g.Notes = value
	}
	return nil
}

func (w *Wizard) service(index int) (*model.DraftService, error) {
	if index < 0 || index >= len(w.state.Services) {
		return nil, ErrNoSuchService
	}
	return &w.state.Services[index], nil
}

func (w *Wizard) notify(level model.NotificationLevel, blocking bool, message string) {
	w.state.Notifications = append(w.state.Notifications, model.Notification{
		Level:    level,
		Blocking: blocking,
		Message:  message,
	})
}
