package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос из query: status, search, page, page_size
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Status: query.Get("status"),
		Search: strings.TrimSpace(query.Get("search")),
	}

	var err error
	if req.Page, err = optionalInt(query, "page"); err != nil {
		return nil, err
	}
	if req.PageSize, err = optionalInt(query, "page_size"); err != nil {
		return nil, err
	}
	return req, nil
}

func optionalInt(query url.Values, key string) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}
