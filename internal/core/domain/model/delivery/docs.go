// Package delivery provides the domain model for delivery lifecycle tracking.
//
// The package includes:
//   - Delivery: the aggregate root carrying the order payload, the assigned
//     driver, and the lifecycle status
//   - Status: a state machine enforcing the ordered -> in_transit -> delivered
//     workflow
//
// Key business rules:
//   - Deliveries are created only in "ordered" status, from inbound order
//     events whose embedded status is "ordered"
//   - The driver is assigned exactly once, moving the delivery to "in_transit"
//   - Completion is accepted from "ordered" or "in_transit"; events may arrive
//     out of order and a missed assignment must not wedge the record
//   - "delivered" is terminal; repeating completion is an idempotent no-op
//
// The state machine is pure decision logic with no I/O. Persistence and event
// publication are orchestrated by the application layer.
package delivery
