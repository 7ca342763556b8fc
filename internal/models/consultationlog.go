package models

import "time"

const ConsultationLogCollection = "consultationlog"

// ConsultationLog is an append-only audit entry for a teleconsultation. No
// update or delete endpoint exists for it.
type ConsultationLog struct {
	AppointmentID string     `json:"appointment_id" bson:"appointment_id" binding:"required"`
	DoctorID      string     `json:"doctor_id" bson:"doctor_id" binding:"required"`
	PatientID     string     `json:"patient_id" bson:"patient_id" binding:"required"`
	StartedAt     time.Time  `json:"started_at" bson:"started_at" binding:"required"`
	EndedAt       *time.Time `json:"ended_at,omitempty" bson:"ended_at,omitempty"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Warnings      []string   `json:"warnings,omitempty" bson:"warnings,omitempty"`
}
