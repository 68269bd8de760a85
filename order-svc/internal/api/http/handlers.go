package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"feastly/logger"
	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/service"
)

const (
	maxUploadSize      = 10 << 20
	maxWebhookBodySize = 1 << 20
	signatureHeader    = "x-paystack-signature"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Handler struct {
	Users        service.UserServiceInterface
	Restaurants  service.RestaurantServiceInterface
	MenuItems    service.MenuItemServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
	Payments     service.PaymentServiceInterface
	Log          *logger.Logger

	// Local image hosting; empty UploadDir disables the static route.
	UploadsPath string
	UploadDir   string
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/users/signup", h.signup).Methods("POST")
	r.HandleFunc("/users/login", h.login).Methods("POST")

	r.HandleFunc("/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/restaurants/{id}/image", h.uploadRestaurantImage).Methods("POST")

	r.HandleFunc("/menu-items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/menu-items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/menu-items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/menu-items/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/menu-items/{id}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/menu-items/{id}/image", h.uploadMenuItemImage).Methods("POST")

	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/orders/user/{userId}", h.getUserOrders).Methods("GET")
	r.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")

	r.HandleFunc("/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/reservations/user/{userId}", h.getUserReservations).Methods("GET")
	r.HandleFunc("/reservations/{id}/status", h.updateReservationStatus).Methods("PUT")

	r.HandleFunc("/payments/webhook", h.paystackWebhook).Methods("POST")

	if h.UploadDir != "" && h.UploadsPath != "" {
		r.PathPrefix(h.UploadsPath).Handler(http.StripPrefix(h.UploadsPath, http.FileServer(http.Dir(h.UploadDir))))
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", domain.ErrValidation, err)
	}
	return nil
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decode(r, &req); err != nil {
		h.fail(w, r, "signup", err, "")
		return
	}
	if _, err := h.Users.Signup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		h.fail(w, r, "signup", err, "")
		return
	}
	writeMessage(w, http.StatusCreated, "User registered successfully")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decode(r, &req); err != nil {
		h.fail(w, r, "login", err, "")
		return
	}
	user, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, "login", err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user": map[string]string{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		h.fail(w, r, "list_restaurants", err, "")
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, "get_restaurant", err, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := decode(r, &rest); err != nil {
		h.fail(w, r, "create_restaurant", err, "")
		return
	}
	if err := h.Restaurants.Create(r.Context(), &rest); err != nil {
		h.fail(w, r, "create_restaurant", err, "")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Restaurant created successfully",
		"id":      rest.ID,
		"img_url": rest.ImageURL,
	})
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := decode(r, &rest); err != nil {
		h.fail(w, r, "update_restaurant", err, "")
		return
	}
	rest.ID = mux.Vars(r)["id"]
	if err := h.Restaurants.Update(r.Context(), &rest); err != nil {
		h.fail(w, r, "update_restaurant", err, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Restaurant updated successfully",
		"img_url": rest.ImageURL,
	})
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := h.Restaurants.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, "delete_restaurant", err, "Restaurant not found")
		return
	}
	writeMessage(w, http.StatusOK, "Restaurant deleted successfully")
}

// imageUpload is the multipart "image" part of an upload request.
type imageUpload struct {
	file     io.ReadCloser
	filename string
}

func readImage(r *http.Request) (*imageUpload, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("%w: file too large", domain.ErrValidation)
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, fmt.Errorf("%w: error retrieving the file", domain.ErrValidation)
	}
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		file.Close()
		return nil, fmt.Errorf("%w: invalid file type, only JPEG, PNG, GIF, WebP allowed", domain.ErrValidation)
	}
	return &imageUpload{file: file, filename: header.Filename}, nil
}

type imageUpdater func(r *http.Request, id, filename string, image io.Reader) (string, error)

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request, action, notFound string, update imageUpdater) {
	upload, err := readImage(r)
	if err != nil {
		h.fail(w, r, action, err, notFound)
		return
	}
	defer upload.file.Close()

	imageURL, err := update(r, mux.Vars(r)["id"], upload.filename, upload.file)
	if err != nil {
		h.fail(w, r, action, err, notFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

func (h *Handler) uploadRestaurantImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, "upload_restaurant_image", "Restaurant not found",
		func(r *http.Request, id, filename string, image io.Reader) (string, error) {
			return h.Restaurants.UpdateImage(r.Context(), id, filename, image)
		})
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.MenuItems.List(r.Context(), r.URL.Query().Get("restaurant_id"))
	if err != nil {
		h.fail(w, r, "list_menu_items", err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.MenuItems.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, "get_menu_item", err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type menuItemRequest struct {
	RestaurantID string           `json:"restaurant_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Available    *bool            `json:"available"`
	ImageURL     string           `json:"img_url"`
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, "create_menu_item", err, "")
		return
	}
	if req.Price == nil {
		writeMessage(w, http.StatusBadRequest, "restaurant_id, name and price are required")
		return
	}

	item := domain.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		Available:    req.Available == nil || *req.Available,
		ImageURL:     req.ImageURL,
	}
	if err := h.MenuItems.Create(r.Context(), &item); err != nil {
		h.fail(w, r, "create_menu_item", err, "")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Menu item added successfully",
		"id":      item.ID,
		"img_url": item.ImageURL,
	})
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var patch domain.MenuItemPatch
	if err := decode(r, &patch); err != nil {
		h.fail(w, r, "update_menu_item", err, "")
		return
	}
	if err := h.MenuItems.Update(r.Context(), mux.Vars(r)["id"], patch); err != nil {
		h.fail(w, r, "update_menu_item", err, "Menu item not found")
		return
	}
	writeMessage(w, http.StatusOK, "Menu item updated successfully")
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.MenuItems.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, "delete_menu_item", err, "Menu item not found")
		return
	}
	writeMessage(w, http.StatusOK, "Menu item deleted successfully")
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, "upload_menu_item_image", "Menu item not found",
		func(r *http.Request, id, filename string, image io.Reader) (string, error) {
			return h.MenuItems.UpdateImage(r.Context(), id, filename, image)
		})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := decode(r, &order); err != nil {
		h.fail(w, r, "create_order", err, "")
		return
	}
	if err := h.Orders.PlaceOrder(r.Context(), &order); err != nil {
		h.fail(w, r, "create_order", err, "User or restaurant not found")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Order placed successfully",
		"order_id": order.ID,
		"status":   order.Status,
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, "get_order", err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListForUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.fail(w, r, "list_user_orders", err, "")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, "update_order_status", err, "")
		return
	}
	status := domain.OrderStatus(req.Status)
	if err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], status); err != nil {
		h.fail(w, r, "update_order_status", err, "Order not found")
		return
	}
	writeMessage(w, http.StatusOK, "Order status updated to "+req.Status)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if err := decode(r, &res); err != nil {
		h.fail(w, r, "create_reservation", err, "")
		return
	}
	if err := h.Reservations.Create(r.Context(), &res); err != nil {
		h.fail(w, r, "create_reservation", err, "")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":        "Reservation created successfully",
		"reservation_id": res.ID,
		"status":         res.Status,
	})
}

func (h *Handler) updateReservationStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, "update_reservation_status", err, "")
		return
	}
	status := domain.ReservationStatus(req.Status)
	if err := h.Reservations.UpdateStatus(r.Context(), mux.Vars(r)["id"], status); err != nil {
		h.fail(w, r, "update_reservation_status", err, "Reservation not found")
		return
	}
	writeMessage(w, http.StatusOK, "Reservation status updated to "+req.Status)
}

func (h *Handler) getUserReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.ListForUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.fail(w, r, "list_user_reservations", err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reservations": reservations})
}

func (h *Handler) paystackWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "Payload too large")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Unreadable body")
		return
	}

	if err := h.Payments.HandleWebhook(r.Context(), body, r.Header.Get(signatureHeader)); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, "Invalid signature")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			h.fail(w, r, "paystack_webhook", err, "")
			return
		}
		h.Log.Error(r.Context(), "paystack_webhook", "webhook processing failed", err)
		writeMessage(w, http.StatusInternalServerError, "Webhook processing failed")
		return
	}
	w.WriteHeader(http.StatusOK)
}
