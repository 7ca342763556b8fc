package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/ruralcare/health-api/internal/models"
	"github.com/ruralcare/health-api/internal/store"
)

// LowStockAlert is one stock row at or below its reorder threshold.
type LowStockAlert struct {
	FacilityID string
	MedicineID string
	Quantity   int
	Threshold  int
}

// ScanLowStock walks the stock collection and collects rows whose quantity
// has fallen to the threshold or below.
func ScanLowStock(ctx context.Context, s store.Store) ([]LowStockAlert, error) {
	docs, err := s.Find(ctx, models.StockCollection, nil, store.FindOptions{})
	if err != nil {
		return nil, err
	}

	var alerts []LowStockAlert
	for _, doc := range docs {
		qty, ok := asInt(doc["quantity"])
		if !ok {
			continue
		}
		threshold, _ := asInt(doc["threshold"])
		if qty > threshold {
			continue
		}
		facility, _ := doc["facility_id"].(string)
		medicine, _ := doc["medicine_id"].(string)
		alerts = append(alerts, LowStockAlert{
			FacilityID: facility,
			MedicineID: medicine,
			Quantity:   qty,
			Threshold:  threshold,
		})
	}
	return alerts, nil
}

// StartLowStockScan schedules the scan on the given cron spec and starts the
// scheduler. Alerts go to the log; this job has no endpoint surface.
func StartLowStockScan(s store.Store, schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		alerts, err := ScanLowStock(context.Background(), s)
		if err != nil {
			log.Printf("Low-stock scan failed: %v", err)
			return
		}
		for _, a := range alerts {
			log.Printf("Low stock at facility %s: medicine %s quantity %d (threshold %d)",
				a.FacilityID, a.MedicineID, a.Quantity, a.Threshold)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func asInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	default:
		return 0, false
	}
}
