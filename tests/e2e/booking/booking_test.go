//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	bookingsURL = "/api/bookings"
	roomsURL    = "/api/rooms"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// registerAndLogin provisions a distinct client and returns its token.
func (s *bookingSuite) registerAndLogin(n int) string {
	req := reqdto.RegisterRequest{
		Name:     fmt.Sprintf("Client %d", n),
		Email:    fmt.Sprintf("client%d@example.com", n),
		Phone:    fmt.Sprintf("%010d", n),
		Password: "secret1",
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, req, "")
	require.Equal(s.T(), http.StatusCreated, rec.Code, "registration failed: %s", rec.Body.String())

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		reqdto.LoginRequest{Email: req.Email, Password: req.Password}, "")
	var login resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &login)
	return login.AccessToken
}

func (s *bookingSuite) reserve(token string, roomID int) *resdto.BookingResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		reqdto.CreateBookingRequest{RoomID: roomID}, token)
	require.Equal(s.T(), http.StatusCreated, rec.Code, "reserve failed: %s", rec.Body.String())

	var response resdto.BookingResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &response)
	return &response
}

func (s *bookingSuite) roomAvailability(roomID int) bool {
	var available bool
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT availability FROM rooms WHERE room_id = $1", roomID).Scan(&available)
	require.NoError(s.T(), err)
	return available
}

func (s *bookingSuite) activeBookingCount(roomID int) int {
	var count int
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND status = 'Booked'", roomID).Scan(&count)
	require.NoError(s.T(), err)
	return count
}

func (s *bookingSuite) TestReserve() {
	s.Run("reserving flips room to unavailable", func() {
		token := s.registerAndLogin(1)

		booking := s.reserve(token, 1)
		s.Equal(1, booking.RoomID)
		s.Equal("Booked", booking.Status)
		s.Equal("Pending", booking.PaymentStatus)

		s.False(s.roomAvailability(1))
		s.Equal(1, s.activeBookingCount(1))
	})

	s.Run("second reserve on same room conflicts", func() {
		first := s.registerAndLogin(1)
		second := s.registerAndLogin(2)

		s.reserve(first, 1)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			reqdto.CreateBookingRequest{RoomID: 1}, second)
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal(1, s.activeBookingCount(1))
	})

	s.Run("one client can hold several rooms", func() {
		token := s.registerAndLogin(1)

		s.reserve(token, 1)
		s.reserve(token, 2)

		s.False(s.roomAvailability(1))
		s.False(s.roomAvailability(2))
	})

	s.Run("unknown room returns 404", func() {
		token := s.registerAndLogin(1)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			reqdto.CreateBookingRequest{RoomID: 999}, token)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("requires authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			reqdto.CreateBookingRequest{RoomID: 1}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("available filter tracks reservations", func() {
		token := s.registerAndLogin(1)
		s.reserve(token, 1)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL+"?available=true", nil, "")
		var rooms []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rooms)
		s.Len(rooms, 15)
		for _, r := range rooms {
			s.NotEqual(1, r.RoomID)
		}
	})
}

func (s *bookingSuite) TestConcurrentReserve() {
	s.Run("N concurrent reserves yield exactly one booking", func() {
		const contenders = 8

		tokens := make([]string, contenders)
		for i := range tokens {
			tokens[i] = s.registerAndLogin(i + 1)
		}

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
			refused int
		)
		for i := range contenders {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
					reqdto.CreateBookingRequest{RoomID: 5}, token)

				mu.Lock()
				defer mu.Unlock()
				switch rec.Code {
				case http.StatusCreated:
					created++
				case http.StatusConflict:
					refused++
				}
			}(tokens[i])
		}
		wg.Wait()

		s.Equal(1, created, "exactly one contender may win the room")
		s.Equal(contenders-1, refused)
		s.Equal(1, s.activeBookingCount(5))
		s.False(s.roomAvailability(5))
	})
}

func (s *bookingSuite) TestCancel() {
	s.Run("cancelling restores availability and removes the row", func() {
		token := s.registerAndLogin(1)
		booking := s.reserve(token, 1)

		url := fmt.Sprintf("%s/%d", bookingsURL, booking.BookingID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		s.True(s.roomAvailability(1))
		s.Equal(0, s.activeBookingCount(1))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, token)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("cancelled room can be reserved again", func() {
		first := s.registerAndLogin(1)
		second := s.registerAndLogin(2)

		booking := s.reserve(first, 1)
		url := fmt.Sprintf("%s/%d", bookingsURL, booking.BookingID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, first)
		require.Equal(s.T(), http.StatusNoContent, rec.Code)

		rebooked := s.reserve(second, 1)
		s.Equal(1, rebooked.RoomID)
	})

	s.Run("unknown booking returns 404 and changes nothing", func() {
		token := s.registerAndLogin(1)
		s.reserve(token, 1)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingsURL+"/424242", nil, token)
		s.Equal(http.StatusNotFound, rec.Code)

		s.False(s.roomAvailability(1))
		s.Equal(1, s.activeBookingCount(1))
	})

	s.Run("double cancel returns 404", func() {
		token := s.registerAndLogin(1)
		booking := s.reserve(token, 1)

		url := fmt.Sprintf("%s/%d", bookingsURL, booking.BookingID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, token)
		require.Equal(s.T(), http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, token)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *bookingSuite) TestListBookings() {
	s.Run("mine filter scopes to the caller", func() {
		first := s.registerAndLogin(1)
		second := s.registerAndLogin(2)

		s.reserve(first, 1)
		s.reserve(second, 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?mine=true", nil, first)
		var mine []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &mine)
		s.Len(mine, 1)
		s.Equal(1, mine[0].RoomID)
		s.Equal("Client 1", mine[0].ClientName)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, first)
		var all []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &all)
		s.Len(all, 2)
	})
}
