package service

import (
	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/transport"
)

var statusDescriptions = map[string]string{
	models.StatusPending:                   "Order placed successfully",
	models.StatusConfirmed:                 "Order confirmed by seller",
	models.StatusProcessing:                "Order is being processed",
	models.StatusShipped:                   "Order has been shipped",
	models.StatusOutForDelivery:            "Order is out for delivery",
	models.StatusDelivered:                 "Order delivered successfully",
	models.StatusCancelled:                 "Order has been cancelled",
	models.StatusRefundRequested:           "Refund requested by customer",
	models.StatusRefundApproved:            "Refund approved by admin",
	models.StatusRefundRejected:            "Refund request rejected",
	models.StatusRefundProcessing:          "Refund is being processed",
	models.StatusRefundCompleted:           "Refund completed successfully",
	models.StatusReplacementRequested:      "Replacement requested by customer",
	models.StatusReplacementAccepted:       "Replacement request accepted",
	models.StatusReplacementRejected:       "Replacement request rejected",
	models.StatusReplacementProcessing:     "Replacement order is being processed",
	models.StatusReplacementShipped:        "Replacement order has been shipped",
	models.StatusReplacementOutForDelivery: "Replacement order is out for delivery",
	models.StatusReplacementDelivered:      "Replacement order delivered successfully",
}

// StatusDescription is the customer-facing text recorded for a status change.
func StatusDescription(status string) string {
	if d, ok := statusDescriptions[status]; ok {
		return d
	}
	return "Order status updated to " + status
}

// deliveryStages is the fixed forward path shown when an order has no
// recorded tracking events.
var deliveryStages = []string{
	models.StatusConfirmed,
	models.StatusProcessing,
	models.StatusShipped,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// TrackingSteps returns the recorded tracking events of o, or a synthesized
// stage list when none were recorded. The synthesized list is never stored.
func TrackingSteps(o *models.Order) []transport.TrackingStep {
	if len(o.TrackingEvents) > 0 {
		out := make([]transport.TrackingStep, 0, len(o.TrackingEvents))
		for _, ev := range o.TrackingEvents {
			ts := ev.Timestamp
			out = append(out, transport.TrackingStep{
				Status:      ev.Status,
				Description: ev.Description,
				Timestamp:   &ts,
				Location:    ev.Location,
				Completed:   true,
			})
		}
		return out
	}

	current := -1
	for i, st := range deliveryStages {
		if st == o.OrderStatus {
			current = i
			break
		}
	}
	created := o.CreatedAt
	out := []transport.TrackingStep{{
		Status:      models.StatusPending,
		Description: StatusDescription(models.StatusPending),
		Timestamp:   &created,
		Completed:   true,
	}}
	for i, st := range deliveryStages {
		out = append(out, transport.TrackingStep{
			Status:      st,
			Description: StatusDescription(st),
			Completed:   i <= current,
		})
	}
	return out
}
