// Package shipment contains the Shipment aggregate and its lifecycle state
// machine. A shipment is a carrier-tracked package record tied to one
// seller's approved items within one order; its status moves only along the
// enumerated lifecycle edges, and carrier-issued fields (tracking number,
// label payload) are write-once.
package shipment
