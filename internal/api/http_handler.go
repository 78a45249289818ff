package api

import (
	"encoding/json"
	"log"
	"net/http"

	"storefront-service/internal/catalog"
	"storefront-service/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// HTTPHandler holds dependencies for HTTP handlers. Per-session state
// (cart, wishlist) is not held here; SessionMiddleware resolves it onto
// the request context.
type HTTPHandler struct {
	catalog  *catalog.Catalog
	validate *validator.Validate
}

// NewHTTPHandler creates a new HTTPHandler. The catalog is mandatory;
// passing nil is a wiring bug and panics immediately.
func NewHTTPHandler(cat *catalog.Catalog) *HTTPHandler {
	if cat == nil {
		panic("api: NewHTTPHandler requires a non-nil catalog")
	}
	return &HTTPHandler{
		catalog:  cat,
		validate: validator.New(),
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("ERROR: Failed to encode JSON response: %v", err)
			http.Error(w, `{"error": "Internal server error during JSON encoding"}`, http.StatusInternalServerError)
		}
	}
}

// --- Catalog Handlers ---

// ProductListResponse is the listing payload: the filtered, ordered
// products plus their count for the "N products" label.
type ProductListResponse struct {
	Data  []domain.Product `json:"data"`
	Count int              `json:"count"`
}

// ListProducts serves the catalog listing. The category, search and sort
// query parameters arrive already URL-decoded; unknown sort values fall
// back to the popular ordering.
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := catalog.Params{
		CategorySlug: q.Get("category"),
		Search:       q.Get("search"),
		Sort:         catalog.ParseSortOption(q.Get("sort")),
	}

	products := catalog.Query(h.catalog.Products(), params)
	respondWithJSON(w, http.StatusOK, ProductListResponse{Data: products, Count: len(products)})
}

// ListFeaturedProducts serves the home-page featured rail.
func (h *HTTPHandler) ListFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	featured := h.catalog.Featured()
	respondWithJSON(w, http.StatusOK, ProductListResponse{Data: featured, Count: len(featured)})
}

// ProductDetailResponse bundles everything the product page renders.
type ProductDetailResponse struct {
	Product domain.Product   `json:"product"`
	Reviews []domain.Review  `json:"reviews"`
	Related []domain.Product `json:"related"`
}

// relatedLimit caps the recommendation rail on the product page.
const relatedLimit = 4

func (h *HTTPHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	product, ok := h.catalog.ProductBySlug(slug)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	respondWithJSON(w, http.StatusOK, ProductDetailResponse{
		Product: product,
		Reviews: h.catalog.ReviewsForProduct(product.ID),
		Related: h.catalog.Related(product, relatedLimit),
	})
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, struct {
		Data []domain.Category `json:"data"`
	}{Data: h.catalog.Categories()})
}

// --- Cart Handlers ---

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, sessionFrom(r).Cart.Snapshot())
}

// CartAddInput defines the expected input for adding a product to the cart.
type CartAddInput struct {
	ProductID        string            `json:"product_id" validate:"required"`
	Quantity         int               `json:"quantity" validate:"omitempty,gte=1"`
	SelectedVariants map[string]string `json:"selected_variants" validate:"omitempty"`
}

func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var input CartAddInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	product, ok := h.catalog.ProductByID(input.ProductID)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	sess := sessionFrom(r)
	sess.Cart.Add(product, input.Quantity, input.SelectedVariants)
	respondWithJSON(w, http.StatusCreated, sess.Cart.Snapshot())
}

// CartQuantityInput defines the expected input for a quantity update. A
// pointer distinguishes a missing field from an explicit zero; zero and
// negative values remove the item.
type CartQuantityInput struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var input CartQuantityInput
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
	// Unknown item ids are absorbed as no-ops by the engine.
	sess.Cart.UpdateQuantity(itemID, *input.Quantity)
	respondWithJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Cart.Remove(chi.URLParam(r, "itemID"))
	respondWithJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Cart.Clear()
	respondWithJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

// DrawerResponse reports the cart drawer visibility after a change.
type DrawerResponse struct {
	IsOpen bool `json:"is_open"`
}

func (h *HTTPHandler) OpenCart(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).Cart.Open()
	respondWithJSON(w, http.StatusOK, DrawerResponse{IsOpen: true})
}

func (h *HTTPHandler) CloseCart(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).Cart.Close()
	respondWithJSON(w, http.StatusOK, DrawerResponse{IsOpen: false})
}

func (h *HTTPHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, DrawerResponse{IsOpen: sessionFrom(r).Cart.Toggle()})
}

// --- Wishlist Handlers ---

// WishlistResponse lists the wishlisted product ids.
type WishlistResponse struct {
	ProductIDs []string `json:"product_ids"`
	Count      int      `json:"count"`
}

func (h *HTTPHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	wl := sessionFrom(r).Wishlist
	respondWithJSON(w, http.StatusOK, WishlistResponse{ProductIDs: wl.IDs(), Count: wl.Len()})
}

// WishlistToggleResponse reports the membership state after a toggle.
type WishlistToggleResponse struct {
	ProductID  string `json:"product_id"`
	Wishlisted bool   `json:"wishlisted"`
}

func (h *HTTPHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if _, ok := h.catalog.ProductByID(productID); !ok {
		respondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	wishlisted := sessionFrom(r).Wishlist.Toggle(productID)
	respondWithJSON(w, http.StatusOK, WishlistToggleResponse{ProductID: productID, Wishlisted: wishlisted})
}

// RegisterRoutes sets up the HTTP routes for the service.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.ListProducts) // GET /api/v1/products?category=&search=&sort=
		// Register before {slug} so "featured" is not treated as a slug.
		r.Get("/featured", h.ListFeaturedProducts)
		r.Get("/{slug}", h.GetProductBySlug)
	})

	r.Get("/api/v1/categories", h.ListCategories)

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddCartItem)
		r.Patch("/items/{itemID}", h.UpdateCartItem)
		r.Delete("/items/{itemID}", h.RemoveCartItem)
		r.Post("/open", h.OpenCart)
		r.Post("/close", h.CloseCart)
		r.Post("/toggle", h.ToggleCart)
	})

	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Get("/", h.GetWishlist)
		r.Post("/{productID}", h.ToggleWishlist)
	})

	r.Post("/api/v1/checkout", h.Checkout)
}
