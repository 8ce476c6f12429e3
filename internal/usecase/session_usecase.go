package usecase

import (
	"context"
	"errors"

	"facility-booking/internal/converter"
	"facility-booking/internal/delivery/dto"
	"facility-booking/internal/domain/entity"
	"facility-booking/internal/service"
	"facility-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoSession = errors.New("no active session")
)

// SessionUsecase lets the host application hand its signed-in user over to
// the booking module and take it back on logout.
type SessionUsecase interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.TokenResponse, error)
	EndSession(ctx context.Context, viewer *entity.Viewer, tokenID string) error
	CurrentViewer(ctx context.Context, viewer *entity.Viewer) *dto.ViewerResponse
}

type sessionUsecase struct {
	log          *logrus.Logger
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
}

func NewSessionUsecase(log *logrus.Logger, jwtService *jwt.JWTService, sessionStore service.SessionStore) SessionUsecase {
	return &sessionUsecase{
		log:          log,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

func (u *sessionUsecase) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.TokenResponse, error) {
	viewer := converter.SessionRequestToViewer(req)

	token, tokenID, err := u.jwtService.GenerateSessionToken(viewer)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	expiry := u.jwtService.GetSessionExpiry()
	if err := u.sessionStore.Save(ctx, viewer.ID, tokenID, expiry); err != nil {
		u.log.Warnf("Failed to store session token: %+v", err)
		return nil, err
	}

	u.log.Infof("Session started: user=%s, role=%s", viewer.ID, viewer.Role)
	return &dto.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int64(expiry.Seconds()),
	}, nil
}

func (u *sessionUsecase) EndSession(ctx context.Context, viewer *entity.Viewer, tokenID string) error {
	if viewer == nil || tokenID == "" {
		return ErrNoSession
	}

	if err := u.sessionStore.Revoke(ctx, viewer.ID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke session token: %+v", err)
		return err
	}

	u.log.Infof("Session ended: user=%s", viewer.ID)
	return nil
}

// CurrentViewer returns nil for anonymous requests
func (u *sessionUsecase) CurrentViewer(ctx context.Context, viewer *entity.Viewer) *dto.ViewerResponse {
	return converter.ViewerToResponse(viewer)
}
