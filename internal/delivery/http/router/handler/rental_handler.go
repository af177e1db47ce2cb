package handler

import (
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"time"

	deliverycontext "chalet/internal/delivery/context"
	"chalet/internal/delivery/http/response"
	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RentalHandler holds dependencies for rental listing handlers.
type RentalHandler struct {
	uc     usecase.RentalUsecase
	logger *slog.Logger
}

// NewRentalHandler is the constructor for RentalHandler, injected by Fx.
func NewRentalHandler(uc usecase.RentalUsecase, logger *slog.Logger) *RentalHandler {
	return &RentalHandler{uc: uc, logger: logger}
}

type rentalResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Surface     float64   `json:"surface"`
	Price       float64   `json:"price"`
	Picture     string    `json:"picture,omitempty"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type rentalListResponse struct {
	Rentals []*rentalResponse `json:"rentals"`
}

func toRentalResponse(rental *entity.Rental) *rentalResponse {
	return &rentalResponse{
		ID:          rental.ID.String(),
		Name:        rental.Name,
		Surface:     rental.Surface,
		Price:       rental.Price,
		Picture:     rental.Picture,
		Description: rental.Description,
		OwnerID:     rental.OwnerID.String(),
		CreatedAt:   rental.CreatedAt,
		UpdatedAt:   rental.UpdatedAt,
	}
}

// ListRentals returns every published listing.
func (h *RentalHandler) ListRentals(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c.Request().Context())

	rentals, err := h.uc.ListRentals(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]*rentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		list = append(list, toRentalResponse(rental))
	}

	return response.Success(c, http.StatusOK, rentalListResponse{Rentals: list}, "")
}

// GetRental returns a single listing.
func (h *RentalHandler) GetRental(c echo.Context) error {
	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	principal := deliverycontext.GetPrincipal(c.Request().Context())

	rental, err := h.uc.GetRental(c.Request().Context(), principal, rentalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRentalResponse(rental), "")
}

// CreateRental handles the multipart listing creation request. The picture
// part is optional.
func (h *RentalHandler) CreateRental(c echo.Context) error {
	input, err := h.bindRentalForm(c)
	if err != nil {
		return err
	}

	createInput := &usecase.CreateRentalInput{
		Name:        input.Name,
		Surface:     input.Surface,
		Price:       input.Price,
		Description: input.Description,
	}

	picture, src, err := h.bindPictureUpload(c)
	if err != nil {
		return err
	}
	if src != nil {
		defer src.Close()
	}
	createInput.Picture = picture

	principal := deliverycontext.GetPrincipal(c.Request().Context())

	rental, err := h.uc.CreateRental(c.Request().Context(), principal, createInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRentalResponse(rental), "Rental created")
}

// UpdateRental handles the listing update request.
func (h *RentalHandler) UpdateRental(c echo.Context) error {
	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	input, err := h.bindRentalForm(c)
	if err != nil {
		return err
	}

	picture, src, err := h.bindPictureUpload(c)
	if err != nil {
		return err
	}
	if src != nil {
		defer src.Close()
	}

	principal := deliverycontext.GetPrincipal(c.Request().Context())

	rental, err := h.uc.UpdateRental(c.Request().Context(), principal, rentalID, &usecase.UpdateRentalInput{
		Name:        input.Name,
		Surface:     input.Surface,
		Price:       input.Price,
		Description: input.Description,
		Picture:     picture,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRentalResponse(rental), "Rental updated")
}

// GetPicture streams a stored listing picture.
func (h *RentalHandler) GetPicture(c echo.Context) error {
	key := c.Param("file")

	r, err := h.uc.OpenPicture(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}
	defer r.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return c.Stream(http.StatusOK, contentType, r)
}

// rentalForm is the shared field set of the create and update forms.
type rentalForm struct {
	Name        string
	Surface     float64
	Price       float64
	Description string
}

// bindPictureUpload reads the optional picture part. A nil upload means the
// request carried none. The caller closes the returned file.
func (h *RentalHandler) bindPictureUpload(c echo.Context) (*usecase.PictureUpload, multipart.File, error) {
	fileHeader, err := c.FormFile("picture")
	if err != nil || fileHeader == nil {
		return nil, nil, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, domainerrors.ErrPictureUploadFailed.WrapMessage("failed to open uploaded picture")
	}

	return &usecase.PictureUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      src,
	}, src, nil
}

func (h *RentalHandler) bindRentalForm(c echo.Context) (*rentalForm, error) {
	name := c.FormValue("name")
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	surface, err := strconv.ParseFloat(c.FormValue("surface"), 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("surface must be a number")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a number")
	}

	return &rentalForm{
		Name:        name,
		Surface:     surface,
		Price:       price,
		Description: c.FormValue("description"),
	}, nil
}
