package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"page_size" query:"page_size"`
}

// ParseOffsetRequest parses raw query values. Empty values take the defaults;
// anything else must be a positive integer and size must not exceed PageMaxSize.
func ParseOffsetRequest(page, size string) (OffsetRequest, error) {
	r := OffsetRequest{Page: 1, Size: PageDefaultSize}

	var err error
	if strings.TrimSpace(page) != "" {
		if r.Page, err = parsePositive("page", page); err != nil {
			return OffsetRequest{}, err
		}
	}
	if strings.TrimSpace(size) != "" {
		if r.Size, err = parsePositive("page_size", size); err != nil {
			return OffsetRequest{}, err
		}
	}
	if err := r.Validate(); err != nil {
		return OffsetRequest{}, err
	}
	return r, nil
}

// Validate checks offset pagination parameters
func (r *OffsetRequest) Validate() error {
	if r.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if r.Size < 1 {
		return fmt.Errorf("page_size must be a positive integer")
	}
	if r.Size > PageMaxSize {
		return fmt.Errorf("page_size must not exceed %d", PageMaxSize)
	}
	return nil
}

func parsePositive(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid literal for %s: %q", name, raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return n, nil
}
