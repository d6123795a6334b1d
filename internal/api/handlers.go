package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hotelhub/internal/models"
	"hotelhub/internal/service"
	"hotelhub/internal/store"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeStoreError maps domain errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrHotelNotFound), errors.Is(err, store.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case store.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) decode(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.New("invalid JSON body")
	}
	if err := s.validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// --- auth ---

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := s.auth.SignIn(req.Email, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.SignOut()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := s.auth.Current()
	if !ok {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// --- hotels ---

func (s *Server) handleListHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := service.HotelFilter{
		Query:    q.Get("q"),
		Location: q.Get("location"),
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		filter.MaxPrice = v
	}
	if raw := q.Get("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid min_rating")
			return
		}
		filter.MinRating = v
	}

	writeJSON(w, http.StatusOK, map[string]any{"hotels": s.hotels.Filter(filter)})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"locations": s.hotels.Locations()})
}

func (s *Server) handleGetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, ok := s.hotels.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, store.ErrHotelNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

type hotelRequest struct {
	Name           string   `json:"name" validate:"required"`
	Location       string   `json:"location" validate:"required"`
	Rating         float64  `json:"rating" validate:"gte=0,lte=5"`
	Image          string   `json:"image"`
	PricePerNight  float64  `json:"price_per_night" validate:"gte=0"`
	AvailableRooms int64    `json:"available_rooms" validate:"gte=0"`
	TotalRooms     int64    `json:"total_rooms" validate:"gte=0"`
	Amenities      []string `json:"amenities"`
}

func (s *Server) handleAddHotel(w http.ResponseWriter, r *http.Request) {
	var req hotelRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hotel, err := s.hotels.Add(r.Context(), models.Hotel{
		Name:           req.Name,
		Location:       req.Location,
		Rating:         req.Rating,
		Image:          req.Image,
		PricePerNight:  req.PricePerNight,
		AvailableRooms: req.AvailableRooms,
		TotalRooms:     req.TotalRooms,
		Amenities:      req.Amenities,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (s *Server) handleUpdateHotel(w http.ResponseWriter, r *http.Request) {
	var upd models.HotelUpdate
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.hotels.Update(r.Context(), id, upd); err != nil {
		writeStoreError(w, err)
		return
	}

	// An unknown id is a no-op; respond with whatever is current.
	if hotel, ok := s.hotels.Get(id); ok {
		writeJSON(w, http.StatusOK, hotel)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := s.hotels.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- bookings ---

type bookingRequest struct {
	HotelID  string `json:"hotel_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	RoomType string `json:"room_type" validate:"required"`
	Guests   int    `json:"guests" validate:"gte=1"`
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid check_in; expected YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid check_out; expected YYYY-MM-DD")
		return
	}

	user, _ := s.session.Current()
	booking, err := s.bookings.Create(r.Context(), service.BookingRequest{
		HotelID:  req.HotelID,
		UserID:   user.ID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: strings.ToLower(strings.TrimSpace(req.RoomType)),
		Guests:   req.Guests,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, bookingResponse(booking))
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	user, _ := s.session.Current()

	var list []models.Booking
	if user.IsAdmin() && r.URL.Query().Get("all") == "true" {
		list = s.bookings.ListAll()
	} else {
		list = s.bookings.ListForUser(user.ID)
	}

	list = service.FilterBookings(list, service.BookingFilter{
		Status: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
	})

	out := make([]map[string]any, 0, len(list))
	for _, b := range list {
		out = append(out, bookingResponse(b))
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": out})
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	user, _ := s.session.Current()

	booking, ok := s.bookings.Get(chi.URLParam(r, "id"))
	if !ok || (!user.IsAdmin() && booking.UserID != user.ID) {
		writeError(w, http.StatusNotFound, store.ErrBookingNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, bookingResponse(booking))
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, _ := s.session.Current()
	id := chi.URLParam(r, "id")

	booking, ok := s.bookings.Get(id)
	if !ok || (!user.IsAdmin() && booking.UserID != user.ID) {
		writeError(w, http.StatusNotFound, store.ErrBookingNotFound.Error())
		return
	}

	booking, changed, err := s.bookings.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	resp := bookingResponse(booking)
	resp["changed"] = changed
	writeJSON(w, http.StatusOK, resp)
}

// bookingResponse adds the display total, which includes tax, next to the
// stored pre-tax total.
func bookingResponse(b models.Booking) map[string]any {
	return map[string]any{
		"id":            b.ID,
		"hotel_id":      b.HotelID,
		"hotel_name":    b.HotelName,
		"user_id":       b.UserID,
		"check_in":      b.CheckIn.Format(dateLayout),
		"check_out":     b.CheckOut.Format(dateLayout),
		"room_type":     b.RoomType,
		"guests":        b.Guests,
		"total_price":   b.TotalPrice,
		"display_total": b.TotalPrice * (1 + models.TaxRate),
		"status":        b.Status,
		"created_at":    b.CreatedAt,
	}
}

// --- admin ---

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.hotels.Stats())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	path, err := s.exporter.Bookings(s.bookings.ListAll())
	if err != nil {
		s.logger.Error().Err(err).Msg("export failed")
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"file_path": path})
}
