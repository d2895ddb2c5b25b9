package controllers

import (
	"net/http"
	"strings"

	"github.com/kanvah/storefront-backend/api/middleware"
	"github.com/kanvah/storefront-backend/api/responses"
	"github.com/kanvah/storefront-backend/api/validators"
	"github.com/kanvah/storefront-backend/internal/checkout"
	"github.com/kanvah/storefront-backend/pkg/enums"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/kanvah/storefront-backend/pkg/logger"
)

type applyCouponRequest struct {
	Code string `json:"code"`
}

type shippingMethodRequest struct {
	Method string `json:"method" validate:"required"`
}

func CheckoutSummary(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		summary, err := svc.Quote(r.Context(), middleware.CartSessionFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// CheckoutApplyCoupon validates the code itself; an empty code is reported by
// the service rather than the body validator so the message matches the form.
func CheckoutApplyCoupon(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var body applyCouponRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.ApplyCoupon(r.Context(), middleware.CartSessionFromContext(r.Context()), body.Code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

func CheckoutRemoveCoupon(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		summary, err := svc.RemoveCoupon(r.Context(), middleware.CartSessionFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

func CheckoutSetShipping(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var body shippingMethodRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParseShippingMethod(strings.ToLower(strings.TrimSpace(body.Method)))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping method").WithDetails(map[string]any{"field": "method"}))
			return
		}

		summary, err := svc.SetShippingMethod(r.Context(), middleware.CartSessionFromContext(r.Context()), method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// CheckoutPlaceOrder answers 200 with guidance when the shopper must sign in or
// add an address first, and 201 with the confirmation once the order is placed.
func CheckoutPlaceOrder(svc checkout.Service, accounts userLoader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || accounts == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		user, err := viewer(r.Context(), accounts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.PlaceOrder(r.Context(), middleware.CartSessionFromContext(r.Context()), user)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if result.Confirmation == nil {
			responses.WriteSuccess(w, result)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
