package api

import (
	"encoding/json"
	"log"
	"net/http"

	"storefront-service/internal/domain"

	"github.com/google/uuid"
)

// CheckoutInput mirrors the three steps of the checkout form: contact
// information, shipping address and method, and payment details.
type CheckoutInput struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=32"`

	ShippingAddress AddressInput `json:"shipping_address" validate:"required"`
	ShippingMethod  string       `json:"shipping_method" validate:"omitempty,oneof=standard express overnight"`

	Payment PaymentInput `json:"payment" validate:"required"`
}

// AddressInput is a shipping address as entered on the form.
type AddressInput struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Street     string `json:"street" validate:"required,max=255"`
	Apartment  string `json:"apartment" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
	Country    string `json:"country" validate:"omitempty,max=100"`
}

// PaymentInput carries the card fields. Nothing here is charged or
// stored; the values are validated for shape and discarded.
type PaymentInput struct {
	CardNumber string `json:"card_number" validate:"required,min=12,max=23"`
	Expiry     string `json:"expiry" validate:"required,max=7"`
	CVC        string `json:"cvc" validate:"required,min=3,max=4"`
	NameOnCard string `json:"name_on_card" validate:"required,max=100"`
}

// CheckoutResponse is the placeholder confirmation. There is no order
// record behind the confirmation number.
type CheckoutResponse struct {
	ConfirmationNumber string        `json:"confirmation_number"`
	Totals             domain.Totals `json:"totals"`
	Message            string        `json:"message"`
}

// Checkout validates the submitted form against a non-empty cart and
// returns a placeholder confirmation. No payment provider is called and
// no order is persisted; the cart is left intact, matching the demo
// behavior of the storefront this service backs.
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var input CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	sess := sessionFrom(r)
	snapshot := sess.Cart.Snapshot()
	if len(snapshot.Items) == 0 {
		respondWithError(w, http.StatusConflict, "Cart is empty")
		return
	}

	confirmation := uuid.NewString()
	log.Printf("INFO: Checkout submitted for session %s: %d items, total %.2f, confirmation %s",
		sess.ID, snapshot.ItemCount, snapshot.Total, confirmation)

	respondWithJSON(w, http.StatusOK, CheckoutResponse{
		ConfirmationNumber: confirmation,
		Totals:             snapshot.Totals,
		Message:            "Order placed (demo): no payment was processed",
	})
}
