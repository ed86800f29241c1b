package order

import "time"

// PaymentStatusPending is the default payment status for new orders when
// the checkout collaborator has not reported one yet.
const PaymentStatusPending = "pending"

// PaymentInfo is the payment record attached to an order. The fulfillment
// core treats it as opaque: no gateway logic runs here, the fields are
// stored and returned as received.
type PaymentInfo struct {
	method        string
	status        string
	transactionID string
	amount        float64
	paidAt        *time.Time
}

// NewPaymentInfo creates a payment record. An empty status defaults to
// pending. All fields are optional.
func NewPaymentInfo(method, status, transactionID string, amount float64, paidAt *time.Time) PaymentInfo {
	if status == "" {
		status = PaymentStatusPending
	}
	return PaymentInfo{
		method:        method,
		status:        status,
		transactionID: transactionID,
		amount:        amount,
		paidAt:        paidAt,
	}
}

// Method returns the payment method, if reported.
func (p PaymentInfo) Method() string {
	return p.method
}

// Status returns the payment status, defaulting to pending.
func (p PaymentInfo) Status() string {
	return p.status
}

// TransactionID returns the external transaction reference, if any.
func (p PaymentInfo) TransactionID() string {
	return p.transactionID
}

// Amount returns the paid amount as reported by the collaborator.
func (p PaymentInfo) Amount() float64 {
	return p.amount
}

// PaidAt returns the payment time, nil if not reported.
func (p PaymentInfo) PaidAt() *time.Time {
	return p.paidAt
}
