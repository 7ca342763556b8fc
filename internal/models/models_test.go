package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func validUser() User {
	return User{
		Name:  "Asha Rao",
		Email: "asha@example.org",
		Phone: "+911234567890",
		Role:  "patient",
	}
}

func TestUserApplyDefaults(t *testing.T) {
	u := validUser()
	u.ApplyDefaults()

	assert.Equal(t, "en", u.Language)
	require.NotNil(t, u.OnlineStatus)
	assert.False(t, *u.OnlineStatus)
	require.NotNil(t, u.IsActive)
	assert.True(t, *u.IsActive)
}

func TestUserApplyDefaults_KeepsExplicitValues(t *testing.T) {
	inactive := false
	u := validUser()
	u.Language = "te"
	u.IsActive = &inactive
	u.ApplyDefaults()

	assert.Equal(t, "te", u.Language)
	assert.False(t, *u.IsActive)
}

func TestUserValidation(t *testing.T) {
	u := validUser()
	assert.NoError(t, Validate(&u))

	bad := User{Email: "not-an-email", Phone: "123", Role: "wizard", YearsExperience: intPtr(-1)}
	err := Validate(&bad)
	require.Error(t, err)

	details := ValidationDetails(err)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "role")
	assert.Contains(t, details, "years_experience")
}

func TestAppointmentApplyDefaults(t *testing.T) {
	a := Appointment{}
	a.ApplyDefaults()
	assert.Equal(t, "requested", a.Status)

	a.Status = "confirmed"
	a.ApplyDefaults()
	assert.Equal(t, "confirmed", a.Status)
}

func TestAppointmentValidation(t *testing.T) {
	a := Appointment{
		PatientID:     "p1",
		DoctorID:      "d1",
		Type:          "telemedicine",
		ScheduledTime: time.Now().UTC(),
	}
	assert.NoError(t, Validate(&a))

	a.Type = "housecall"
	a.ScheduledTime = time.Time{}
	err := Validate(&a)
	require.Error(t, err)

	details := ValidationDetails(err)
	assert.Contains(t, details, "type")
	assert.Contains(t, details, "scheduled_time")
}

func TestStockValidation(t *testing.T) {
	s := Stock{FacilityID: "f1", MedicineID: "m1", Quantity: intPtr(0)}
	assert.NoError(t, Validate(&s))

	s.Quantity = intPtr(-5)
	err := Validate(&s)
	require.Error(t, err)
	assert.Contains(t, ValidationDetails(err), "quantity")

	missing := Stock{FacilityID: "f1", MedicineID: "m1"}
	err = Validate(&missing)
	require.Error(t, err)
	assert.Contains(t, ValidationDetails(err), "quantity")
}

func TestStockPatchFields(t *testing.T) {
	empty := StockPatch{}
	assert.Empty(t, empty.Fields())

	loc := "rack 4"
	p := StockPatch{Quantity: intPtr(12), Location: &loc}
	fields := p.Fields()
	assert.Equal(t, map[string]interface{}{"quantity": 12, "location": "rack 4"}, fields)
}

func TestHealthRecordDefaults(t *testing.T) {
	r := HealthRecord{PatientID: "p1", VisitDate: time.Now().UTC()}
	r.ApplyDefaults()
	assert.Equal(t, "patient", r.PrivacyLevel)

	r.PrivacyLevel = "government"
	r.ApplyDefaults()
	assert.Equal(t, "government", r.PrivacyLevel)
}

func TestConsultationLogValidation(t *testing.T) {
	entry := ConsultationLog{
		AppointmentID: "a1",
		DoctorID:      "d1",
		PatientID:     "p1",
		StartedAt:     time.Now().UTC(),
	}
	assert.NoError(t, Validate(&entry))

	err := Validate(&ConsultationLog{})
	require.Error(t, err)

	details := ValidationDetails(err)
	assert.Contains(t, details, "appointment_id")
	assert.Contains(t, details, "started_at")
}

func TestValidationDetailsNonValidatorError(t *testing.T) {
	assert.Nil(t, ValidationDetails(assert.AnError))
}
