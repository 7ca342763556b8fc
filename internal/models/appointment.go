package models

import "time"

const AppointmentCollection = "appointment"

// Appointment references patient and doctor users by opaque id strings. The
// references are never resolved against the user collection.
type Appointment struct {
	PatientID     string    `json:"patient_id" bson:"patient_id" binding:"required"`
	DoctorID      string    `json:"doctor_id" bson:"doctor_id" binding:"required"`
	Type          string    `json:"type" bson:"type" binding:"required,oneof=telemedicine physical"`
	ScheduledTime time.Time `json:"scheduled_time" bson:"scheduled_time" binding:"required"`
	Symptoms      string    `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	Status        string    `json:"status" bson:"status" binding:"omitempty,oneof=requested confirmed completed cancelled"`

	// Correlation token for records queued while the client was offline.
	// Client-generated, not unique server-side.
	OfflineTempID string `json:"offline_temp_id,omitempty" bson:"offline_temp_id,omitempty"`
}

func (a *Appointment) ApplyDefaults() {
	if a.Status == "" {
		a.Status = "requested"
	}
}
