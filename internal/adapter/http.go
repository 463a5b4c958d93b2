// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/givelink/givelink/internal/config"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.APIBaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.APIBaseURL is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request builds a resty request carrying ctx and a correlation id that the
// client logs alongside each call; the backend ignores the header.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/login.php")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if _, err = decodeEnvelope(resp); err != nil {
		return models.LoginResult{}, err
	}

	// login.php uses the flat {success:true, ...fields} shape; the identity
	// fields sit next to the envelope rather than under data.
	var body struct {
		UserID   models.APIInt `json:"user_id"`
		RoleID   models.APIInt `json:"role_id"`
		Username string        `json:"username"`
		NgoID    models.APIInt `json:"ngo_id"`
		NGOName  string        `json:"ngoname"`
		Email    string        `json:"email"`
		City     string        `json:"city"`
		Blocked  models.APIInt `json:"blocked"`
	}
	if err = unmarshalBody(resp.Body(), &body); err != nil {
		return models.LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}

	return models.LoginResult{
		Session: models.Session{
			UserID:   body.UserID.Int64(),
			RoleID:   models.Role(body.RoleID),
			Username: body.Username,
			NgoID:    body.NgoID.Int64(),
			NGOName:  body.NGOName,
			Email:    body.Email,
			City:     body.City,
		},
		Blocked: body.Blocked != 0,
	}, nil
}

func (h *httpServerAdapter) RegisterDonor(ctx context.Context, reg models.DonorRegistration) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		Post("/User/register.php")
	if err != nil {
		return fmt.Errorf("register donor request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) RegisterNGO(ctx context.Context, reg models.NGORegistration) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		Post("/Ngo/register.php")
	if err != nil {
		return fmt.Errorf("register ngo request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, email, newPassword string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": newPassword}).
		Post("/resetpassword.php")
	if err != nil {
		return fmt.Errorf("reset password request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) User(ctx context.Context, userID int64) (models.User, error) {
	resp, err := h.request(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		Get("/User/getUser.php")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.User{}, err
	}

	// getUser.php nests the record under "user" instead of "data".
	var body struct {
		User models.User `json:"user"`
	}
	if err = unmarshalBody(resp.Body(), &body); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}
	if body.User.UserID == 0 && len(env.Data) > 0 {
		if derr := decodeData(env, &body.User); derr != nil {
			return models.User{}, derr
		}
	}

	return body.User, nil
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, user models.User) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("user_id", strconv.FormatInt(user.UserID.Int64(), 10)).
		SetBody(user).
		Put("/User/updateUser.php")
	if err != nil {
		return fmt.Errorf("update user request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.request(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		Delete("/User/deleteUser.php")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.request(ctx).Get("/Admin/getallusers.php")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err = decodeData(env, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpServerAdapter) AdminStats(ctx context.Context) (models.AdminStats, error) {
	resp, err := h.request(ctx).Get("/Admin/adminstats.php")
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("admin stats request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.AdminStats{}, err
	}

	var stats models.AdminStats
	if err = decodeData(env, &stats); err != nil {
		return models.AdminStats{}, err
	}
	return stats, nil
}

func (h *httpServerAdapter) ListNGOs(ctx context.Context) ([]models.NGO, error) {
	resp, err := h.request(ctx).Get("/Ngo/getngos.php")
	if err != nil {
		return nil, fmt.Errorf("list ngos request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var ngos []models.NGO
	if err = decodeData(env, &ngos); err != nil {
		return nil, err
	}
	return ngos, nil
}

func (h *httpServerAdapter) UpdateNGO(ctx context.Context, ngo models.NGO) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ngo).
		Put("/Ngo/updatengoprofile.php")
	if err != nil {
		return fmt.Errorf("update ngo request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) DeleteNGO(ctx context.Context, ngoID int64) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int64{"ngo_id": ngoID}).
		Delete("/Ngo/deletengo.php")
	if err != nil {
		return fmt.Errorf("delete ngo request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) ListAllDonations(ctx context.Context) ([]models.DonatedItem, error) {
	resp, err := h.request(ctx).Get("/Ngo/getAlldonations.php")
	if err != nil {
		return nil, fmt.Errorf("list donations request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var items []models.DonatedItem
	if err = decodeData(env, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpServerAdapter) ListUserDonations(ctx context.Context, userID int64) ([]models.DonatedItem, error) {
	resp, err := h.request(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		Get("/User/itemdonation.php")
	if err != nil {
		return nil, fmt.Errorf("list user donations request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var items []models.DonatedItem
	if err = decodeData(env, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpServerAdapter) SubmitDonation(ctx context.Context, sub models.DonationSubmission) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sub).
		Post("/User/itemdonation.php")
	if err != nil {
		return fmt.Errorf("submit donation request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) UploadImage(ctx context.Context, filename string, image io.Reader) (string, error) {
	resp, err := h.request(ctx).
		SetFileReader("image", filename, image).
		Post("/User/uploadimage.php")
	if err != nil {
		return "", fmt.Errorf("upload image request: %w", err)
	}
	if _, err = decodeEnvelope(resp); err != nil {
		return "", err
	}

	var body struct {
		Filename string `json:"filename"`
	}
	if err = unmarshalBody(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if body.Filename == "" {
		return "", fmt.Errorf("%w: upload response carries no filename", ErrServerFailure)
	}

	return body.Filename, nil
}

func (h *httpServerAdapter) ImageURL(filename string) string {
	return h.client.BaseURL + "/User/getimage.php?filename=" + url.QueryEscape(filename)
}

func (h *httpServerAdapter) DonorStats(ctx context.Context, userID int64) (models.DonorStats, error) {
	resp, err := h.request(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		Get("/User/getuserdonationstats.php")
	if err != nil {
		return models.DonorStats{}, fmt.Errorf("donor stats request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.DonorStats{}, err
	}

	var stats models.DonorStats
	if len(env.Data) > 0 {
		if err = decodeData(env, &stats); err != nil {
			return models.DonorStats{}, err
		}
		return stats, nil
	}
	if err = unmarshalBody(resp.Body(), &stats); err != nil {
		return models.DonorStats{}, fmt.Errorf("decode donor stats response: %w", err)
	}
	return stats, nil
}

func (h *httpServerAdapter) AddToInventory(ctx context.Context, claim models.ClaimRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(claim).
		Post("/Ngo/addToInventory.php")
	if err != nil {
		return fmt.Errorf("add to inventory request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) UpdateDonationStatus(ctx context.Context, itemID int64, status models.DonationStatus, ngoID int64, ngoName string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"item_id": itemID,
			"status":  status,
			"ngo_id":  ngoID,
			"ngoname": ngoName,
		}).
		Post("/Ngo/updateDonationStatus.php")
	if err != nil {
		return fmt.Errorf("update donation status request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) ListInventory(ctx context.Context, ngoID int64) ([]models.InventoryEntry, error) {
	resp, err := h.request(ctx).
		SetQueryParam("ngo_id", strconv.FormatInt(ngoID, 10)).
		Get("/Ngo/inventory.php")
	if err != nil {
		return nil, fmt.Errorf("list inventory request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var entries []models.InventoryEntry
	if err = decodeData(env, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *httpServerAdapter) CompleteInventoryEntry(ctx context.Context, inventoryID int64) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int64{"inventory_id": inventoryID}).
		Post("/Ngo/inventory.php")
	if err != nil {
		return fmt.Errorf("complete inventory entry request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) CompleteDonation(ctx context.Context, itemID int64) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"item_id": itemID,
			"status":  models.StatusCompleted,
		}).
		Post("/Ngo/updateDonation.php")
	if err != nil {
		return fmt.Errorf("complete donation request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) ListRequirements(ctx context.Context, ngoID int64) ([]models.UrgentNeed, error) {
	req := h.request(ctx)
	if ngoID != 0 {
		req.SetQueryParam("ngo_id", strconv.FormatInt(ngoID, 10))
	}

	resp, err := req.Get("/Ngo/ngorequirements.php")
	if err != nil {
		return nil, fmt.Errorf("list requirements request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var needs []models.UrgentNeed
	if err = decodeData(env, &needs); err != nil {
		return nil, err
	}
	return needs, nil
}

func (h *httpServerAdapter) AddRequirement(ctx context.Context, need models.UrgentNeed) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(need).
		Post("/Ngo/ngorequirements.php")
	if err != nil {
		return fmt.Errorf("add requirement request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) DeleteRequirement(ctx context.Context, requirementID int64) error {
	resp, err := h.request(ctx).
		SetQueryParam("requirement_id", strconv.FormatInt(requirementID, 10)).
		Delete("/Ngo/ngorequirements.php")
	if err != nil {
		return fmt.Errorf("delete requirement request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) PendingDonationCount(ctx context.Context) (int64, error) {
	resp, err := h.request(ctx).Get("/Ngo/homescreenstatspendingreq.php")
	if err != nil {
		return 0, fmt.Errorf("pending count request: %w", err)
	}
	if _, err = decodeEnvelope(resp); err != nil {
		return 0, err
	}

	var body struct {
		Count models.APIInt `json:"count"`
	}
	if err = unmarshalBody(resp.Body(), &body); err != nil {
		return 0, fmt.Errorf("decode pending count response: %w", err)
	}
	return body.Count.Int64(), nil
}

func (h *httpServerAdapter) NgoDonationCounts(ctx context.Context, ngoID int64) (int64, int64, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int64{"ngo_id": ngoID}).
		Post("/Ngo/homescreenstatsaccepte_complete.php")
	if err != nil {
		return 0, 0, fmt.Errorf("ngo donation counts request: %w", err)
	}
	if _, err = decodeEnvelope(resp); err != nil {
		return 0, 0, err
	}

	var body struct {
		Accepted  models.APIInt `json:"accepted_count"`
		Completed models.APIInt `json:"completed_count"`
	}
	if err = unmarshalBody(resp.Body(), &body); err != nil {
		return 0, 0, fmt.Errorf("decode ngo donation counts response: %w", err)
	}
	return body.Accepted.Int64(), body.Completed.Int64(), nil
}
