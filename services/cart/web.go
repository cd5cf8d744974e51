package cart

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcart/lib/mycontext"
	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/myhttp"
	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mytoast"
)

//go:embed templates
var templateFolder embed.FS
var cartPageTemplate *template.Template

func init() {
	cartPageTemplate = template.Must(template.New("cart.html").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		"dec": func(i int) int { return i - 1 },
	}).ParseFS(templateFolder, "templates/cart.html"))
}

type service struct {
	manager     *Manager
	toasts      mytoast.Drainer
	formDecoder *form.Decoder
	logger      mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(manager *Manager, toasts mytoast.Drainer, logger mylog.Logger) *service {
	return &service{
		manager:     manager,
		toasts:      toasts,
		formDecoder: form.NewDecoder(),
		logger:      logger,
	}
}

type productForm struct {
	ProductID int `form:"productId"`
}

type amountRequest struct {
	Amount int `json:"amount"`
}

type cartPageInfo struct {
	Products []Product
	Size     int
	Toasts   []mytoast.Toast
}

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) {
	// Endpoints that compose the userinterface
	router.HandleFunc("/", s.cartPage()).Methods("GET")
	router.HandleFunc("/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/cart/add", s.addProductForm()).Methods("POST")
	router.HandleFunc("/cart/amount", s.updateProductAmountForm()).Methods("POST")
	router.HandleFunc("/cart/remove", s.removeProductForm()).Methods("POST")

	// Endpoints for a javascript front-end
	router.HandleFunc("/api/cart", s.getCartAPI()).Methods("GET")
	router.HandleFunc("/api/cart/{productID}", s.addProductAPI()).Methods("POST")
	router.HandleFunc("/api/cart/{productID}", s.removeProductAPI()).Methods("DELETE")
	router.HandleFunc("/api/cart/{productID}/amount", s.updateProductAmountAPI()).Methods("PUT")
	router.HandleFunc("/api/notifications", s.notificationsAPI()).Methods("GET")
}

func (s *service) cartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		view := s.manager.View()
		err := cartPageTemplate.Execute(w, cartPageInfo{
			Products: view.Products,
			Size:     view.Size,
			Toasts:   s.toasts.Drain(),
		})
		if err != nil {
			myhttp.NewWriter(s.logger).WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *service) addProductForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		req := productForm{}
		err := s.decodeForm(r, &req)
		if err != nil {
			myhttp.NewWriter(s.logger).WriteError(c, w, 1, err)
			return
		}

		s.manager.AddProduct(c, req.ProductID)

		redirectToCart(w, r)
	}
}

func (s *service) updateProductAmountForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		req := UpdateProductAmount{}
		err := s.decodeForm(r, &req)
		if err != nil {
			myhttp.NewWriter(s.logger).WriteError(c, w, 1, err)
			return
		}

		s.manager.UpdateProductAmount(c, req)

		redirectToCart(w, r)
	}
}

func (s *service) removeProductForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		req := productForm{}
		err := s.decodeForm(r, &req)
		if err != nil {
			myhttp.NewWriter(s.logger).WriteError(c, w, 1, err)
			return
		}

		s.manager.RemoveProduct(c, req.ProductID)

		redirectToCart(w, r)
	}
}

func (s *service) getCartAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		myhttp.NewWriter(s.logger).Write(c, w, http.StatusOK, s.manager.View())
	}
}

func (s *service) addProductAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productID, err := productIDFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		s.manager.AddProduct(c, productID)

		responseWriter.Write(c, w, http.StatusOK, s.manager.View())
	}
}

func (s *service) removeProductAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productID, err := productIDFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		s.manager.RemoveProduct(c, productID)

		responseWriter.Write(c, w, http.StatusOK, s.manager.View())
	}
}

func (s *service) updateProductAmountAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productID, err := productIDFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		req := amountRequest{}
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err)))
			return
		}

		s.manager.UpdateProductAmount(c, UpdateProductAmount{ProductID: productID, Amount: req.Amount})

		responseWriter.Write(c, w, http.StatusOK, s.manager.View())
	}
}

func (s *service) notificationsAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		myhttp.NewWriter(s.logger).Write(c, w, http.StatusOK, s.toasts.Drain())
	}
}

func (s *service) decodeForm(r *http.Request, dest any) error {
	err := r.ParseForm()
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing form: %s", err))
	}

	err = s.formDecoder.Decode(dest, r.PostForm)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	return nil
}

func redirectToCart(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, fmt.Sprintf("%s/cart", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
}

func productIDFromRequest(r *http.Request) (int, error) {
	raw := mux.Vars(r)["productID"]
	productID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, myerrors.NewInvalidInputErrorf("invalid product id '%s'", raw)
	}
	return productID, nil
}
