package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/errors"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
)

// ProfileUpdate carries a partial profile edit; nil fields are left untouched
// by the backend.
type ProfileUpdate struct {
	Name      *string       `json:"name,omitempty"`
	AvatarURL *string       `json:"avatarUrl,omitempty"`
	Links     *models.Links `json:"links,omitempty"`
	Tags      *[]string     `json:"tags,omitempty"`
}

func (c *Client) GetProfile(ctx context.Context, userID string) (*models.StudentProfile, error) {
	ctx, span := tracer.Start(ctx, "GetProfile")
	defer span.End()

	var profile models.StudentProfile
	if err := c.get(ctx, "/users/"+userID+"/profile", nil, &profile); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile validates external links before sending the partial update.
func (c *Client) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.StudentProfile, error) {
	ctx, span := tracer.Start(ctx, "UpdateProfile")
	defer span.End()

	if update.Links != nil {
		if err := validateLinks(*update.Links); err != nil {
			return nil, err
		}
	}

	var profile models.StudentProfile
	if err := c.patch(ctx, "/users/"+userID+"/profile", update, &profile); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &profile, nil
}

// UpdateUser updates account-level fields and returns the replacement user
// snapshot the session manager swaps in wholesale.
func (c *Client) UpdateUser(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UpdateUser")
	defer span.End()

	var user models.User
	if err := c.patch(ctx, "/users/"+userID, fields, &user); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListStudents(ctx context.Context, campus string) ([]models.StudentProfile, error) {
	ctx, span := tracer.Start(ctx, "ListStudents")
	defer span.End()

	query := url.Values{}
	if campus != "" {
		query.Set("campus", campus)
	}

	var students []models.StudentProfile
	if err := c.get(ctx, "/users/students", query, &students); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return students, nil
}

func validateLinks(links models.Links) error {
	for field, raw := range map[string]string{
		"codeRepo":  links.CodeRepo,
		"linkedin":  links.LinkedIn,
		"resume":    links.Resume,
		"portfolio": links.Portfolio,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || !strings.HasPrefix(u.Scheme, "http") || u.Host == "" {
			return errors.InvalidInput("invalid "+field+" link", nil)
		}
	}
	return nil
}
