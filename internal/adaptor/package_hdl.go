package adaptor

import (
	"net/http"
	"strconv"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// 32 MB cap on multipart package forms, images included
const maxPackageFormSize = 32 << 20

type PackageHandler struct {
	service   usecase.PackageService
	uploadDir string
	log       *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, uploadDir string, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service:   service,
		uploadDir: uploadDir,
		log:       log.With(zap.String("handler", "package")),
	}
}

// POST /api/admin/packages
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := h.parsePackageForm(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.service.CreatePackage(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Package created", resp)
}

// GET /api/packages
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	listReq := &request.PackageListRequest{
		Category:   query.Get("category"),
		SearchTerm: query.Get("searchTerm"),
		OfferOnly:  query.Get("offer") == "true",
		Sort:       query.Get("sort"),
		Order:      query.Get("order"),
		StartIndex: utils.ParseOffset(query.Get("startIndex")),
		Limit:      utils.ParseInt(query.Get("limit"), 8),
	}

	resp, err := h.service.GetPackages(r.Context(), listReq)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved", resp)
}

// GET /api/packages/{id}
func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetPackageByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package retrieved", resp)
}

// PUT /api/admin/packages/{id}
func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, err := h.parsePackageForm(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.service.UpdatePackage(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package updated", resp)
}

// DELETE /api/admin/packages/{id}
func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackage(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package deleted", nil)
}

// parsePackageForm reads the multipart create/update form. List fields
// arrive as repeated values under one key; uploaded images are saved to
// disk and their generated filenames carried in the request.
func (h *PackageHandler) parsePackageForm(r *http.Request) (*request.PackageRequest, error) {
	if err := r.ParseMultipartForm(maxPackageFormSize); err != nil {
		return nil, err
	}

	form := r.MultipartForm

	req := &request.PackageRequest{
		Name:           r.FormValue("packageName"),
		Description:    r.FormValue("packageDescription"),
		Destination:    r.FormValue("packageDestination"),
		Category:       r.FormValue("packageCategory"),
		Days:           utils.ParseInt(r.FormValue("packageDays"), 1),
		Nights:         utils.ParseOffset(r.FormValue("packageNights")),
		Accommodation:  r.FormValue("packageAccommodation"),
		Transportation: r.FormValue("packageTransportation"),
		Meals:          form.Value["packageMeals"],
		Activities:     form.Value["packageActivities"],
		Inclusions:     form.Value["inclusions"],
		Exclusions:     form.Value["exclusions"],
		Itinerary:      form.Value["itinerary"],
		BookingTips:    form.Value["bookingTips"],
		Hotels:         form.Value["hotels"],
		Foods:          form.Value["foods"],
		Features:       form.Value["features"],
	}

	if price, err := strconv.ParseFloat(r.FormValue("packagePrice"), 64); err == nil {
		req.Price = price
	}
	if discount, err := strconv.ParseFloat(r.FormValue("discount"), 64); err == nil {
		req.Discount = discount
	}

	images, err := utils.SaveUploadedFiles(form.File["packageImages"], h.uploadDir)
	if err != nil {
		h.log.Error("Failed to save uploaded images", zap.Error(err))
		return nil, err
	}
	req.Images = images

	return req, nil
}
