package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

type stubVehicleRepo struct {
	vehicles map[string]*domain.Vehicle
	nextID   int
}

func newStubVehicleRepo() *stubVehicleRepo {
	return &stubVehicleRepo{vehicles: make(map[string]*domain.Vehicle)}
}

func cloneVehicle(v *domain.Vehicle) *domain.Vehicle {
	cp := *v
	return &cp
}

func (r *stubVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	r.nextID++
	v.ID = "v-" + strconv.Itoa(r.nextID)
	r.vehicles[v.ID] = cloneVehicle(v)
	return cloneVehicle(v), nil
}

func (r *stubVehicleRepo) FindByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	return cloneVehicle(v), nil
}

func (r *stubVehicleRepo) List(ctx context.Context, filter ports.VehicleFilter) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, *cloneVehicle(v))
	}
	return out, nil
}

func (r *stubVehicleRepo) Update(ctx context.Context, id string, v *domain.Vehicle) (*domain.Vehicle, error) {
	if _, ok := r.vehicles[id]; !ok {
		return nil, domain.ErrVehicleNotFound
	}
	v.ID = id
	r.vehicles[id] = cloneVehicle(v)
	return cloneVehicle(v), nil
}

func (r *stubVehicleRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.vehicles[id]; !ok {
		return domain.ErrVehicleNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func seedVehicle(t *testing.T, svc *VehicleService) *domain.Vehicle {
	t.Helper()
	v, err := svc.Create(context.Background(), &domain.Vehicle{
		Make:            "Toyota",
		Model:           "Innova",
		Year:            2022,
		Type:            domain.VehicleVan,
		SeatingCapacity: 7,
		IsAvailable:     true,
		BasePricePerDay: 80,
		Driver: domain.Driver{
			Name:          "Ravi",
			Mobile:        "+91555",
			Experience:    8,
			LicenseNumber: "KL-01-1234",
		},
	})
	if err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return v
}

func TestVehicleService_CreateDefaultsSlices(t *testing.T) {
	svc := NewVehicleService(newStubVehicleRepo())
	v := seedVehicle(t, svc)

	if v.Features == nil || v.Images == nil {
		t.Fatalf("expected empty slices, got nil")
	}
	if v.CreatedAt.IsZero() || v.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestVehicleService_UpdateMergesDriver(t *testing.T) {
	svc := NewVehicleService(newStubVehicleRepo())
	v := seedVehicle(t, svc)

	mobile := "+91999"
	updated, err := svc.Update(context.Background(), v.ID, ports.VehicleUpdateInput{
		Driver: &ports.DriverUpdate{Mobile: &mobile},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Driver.Mobile != "+91999" {
		t.Fatalf("driver mobile not updated: %s", updated.Driver.Mobile)
	}
	if updated.Driver.Name != "Ravi" || updated.Driver.LicenseNumber != "KL-01-1234" {
		t.Fatalf("driver merge erased other fields: %+v", updated.Driver)
	}
}

func TestVehicleService_UpdatePartialFields(t *testing.T) {
	svc := NewVehicleService(newStubVehicleRepo())
	v := seedVehicle(t, svc)

	price := 95.0
	updated, err := svc.Update(context.Background(), v.ID, ports.VehicleUpdateInput{
		BasePricePerDay: &price,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.BasePricePerDay != 95 {
		t.Fatalf("price not updated: %v", updated.BasePricePerDay)
	}
	if updated.Make != "Toyota" || updated.SeatingCapacity != 7 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestVehicleService_ToggleAvailability(t *testing.T) {
	svc := NewVehicleService(newStubVehicleRepo())
	v := seedVehicle(t, svc)

	toggled, err := svc.ToggleAvailability(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.IsAvailable {
		t.Fatalf("expected vehicle to become unavailable")
	}

	toggled, err = svc.ToggleAvailability(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.IsAvailable {
		t.Fatalf("expected vehicle to become available again")
	}
}

func TestVehicleService_GetUnknown(t *testing.T) {
	svc := NewVehicleService(newStubVehicleRepo())

	if _, err := svc.Get(context.Background(), "ghost"); err != domain.ErrVehicleNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
