package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifelink/internal/appointment/models"
	"lifelink/internal/appointment/service"
	"lifelink/internal/appointment/store"
	"lifelink/internal/platform/metrics"
	dErrors "lifelink/pkg/domain-errors"
	"lifelink/pkg/requestcontext"
)

func newService(t *testing.T) (*service.Service, *store.InMemory, *metrics.Metrics) {
	t.Helper()
	st := store.NewInMemory()
	m := metrics.New(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewService(st, m, logger), st, m
}

func validRequest() models.CreateRequest {
	return models.CreateRequest{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane.doe@example.com",
		Phone:           "5551234567",
		BloodType:       "O+",
		AppointmentDate: "2026-03-15",
		AppointmentTime: "10:00 AM",
		DonationType:    "whole-blood",
		CenterID:        1,
		CenterName:      "LifeLink Downtown Donation Center",
		CenterAddress:   "123 Main Street, Downtown",
	}
}

func TestCreate(t *testing.T) {
	svc, _, m := newService(t)
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	appt, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.False(t, appt.ID.IsZero())
	assert.Equal(t, now, appt.CreatedAt)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AppointmentsScheduled))
}

func TestCreateMissingFields(t *testing.T) {
	svc, st, _ := newService(t)

	req := validRequest()
	req.Email = ""
	req.CenterID = 0

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInvalidInput))
	assert.Equal(t, "Missing required fields: email, centerId", err.Error())

	appointments, listErr := st.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, appointments)
}

func TestCreateOmittedCenterIDNamesField(t *testing.T) {
	svc, st, _ := newService(t)

	req := validRequest()
	req.CenterID = 0

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "centerId")

	appointments, listErr := st.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, appointments)
}

func TestCreateListCancelRoundTrip(t *testing.T) {
	svc, _, m := newService(t)
	ctx := context.Background()

	early := validRequest()
	early.AppointmentDate = "2026-03-01"
	late := validRequest()
	late.AppointmentDate = "2026-04-01"
	late.FirstName = "Alice"

	created, err := svc.Create(ctx, late)
	require.NoError(t, err)
	_, err = svc.Create(ctx, early)
	require.NoError(t, err)

	appointments, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "Jane", appointments[0].FirstName)
	assert.Equal(t, "Alice", appointments[1].FirstName)

	fetched, err := svc.Get(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	require.NoError(t, svc.Cancel(ctx, created.ID.Hex()))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AppointmentsCancelled))

	appointments, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}

func TestGetNotFound(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
}

func TestGetInvalidID(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInvalidInput))
}

func TestCancelNotFound(t *testing.T) {
	svc, _, m := newService(t)

	err := svc.Cancel(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.AppointmentsCancelled))
}

func TestCreateStoreFailure(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewService(&failingStore{err: errors.New("connection reset")}, m, logger)

	_, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInternal))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.AppointmentsScheduled))
}

type failingStore struct {
	err error
}

func (f *failingStore) Create(ctx context.Context, appointment *models.Appointment) error {
	return f.err
}

func (f *failingStore) List(ctx context.Context) ([]models.Appointment, error) {
	return nil, f.err
}

func (f *failingStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	return nil, f.err
}

func (f *failingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.err
}
