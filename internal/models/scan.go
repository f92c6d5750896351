package models

import "time"

// ScanRecord is one completed recognition event.
type ScanRecord struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	Price       string    `json:"price"`
	Date        string    `json:"date"` // human-readable, da-DK style d.m.yyyy
	Timestamp   time.Time `json:"timestamp"`
	PhotoURI    string    `json:"photoUri,omitempty"`
}
