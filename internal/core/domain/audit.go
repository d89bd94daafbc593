package domain

import "time"

// AuditAction names a mutation applied to the employee registry.
type AuditAction string

const (
	AuditEmployeeCreated AuditAction = "employee.created"
	AuditEmployeeUpdated AuditAction = "employee.updated"
	AuditEmployeeDeleted AuditAction = "employee.deleted"
)

// AuditEntry records a single registry mutation and who performed it.
type AuditEntry struct {
	EmployeeID string      `bson:"employee_id"`
	Action     AuditAction `bson:"action"`
	Actor      string      `bson:"actor"`
	Timestamp  time.Time   `bson:"timestamp"`
}
