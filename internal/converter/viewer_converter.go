package converter

import (
	"facility-booking/internal/delivery/dto"
	"facility-booking/internal/domain/entity"
)

func ViewerToResponse(viewer *entity.Viewer) *dto.ViewerResponse {
	if viewer == nil {
		return nil
	}
	return &dto.ViewerResponse{
		ID:    viewer.ID,
		Name:  viewer.Name,
		Email: viewer.Email,
		Role:  viewer.Role,
	}
}

func SessionRequestToViewer(req *dto.CreateSessionRequest) *entity.Viewer {
	return &entity.Viewer{
		ID:    string(req.ID),
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
}
