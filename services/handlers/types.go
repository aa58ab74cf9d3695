package handlers

import (
	"context"
	"mime/multipart"

	"github.com/heartwired/valentine_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(userID string) (*dto.ProfileResponse, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	AssignRole(userID, role string) error
}

type ContentServiceInterface interface {
	GetPictures(userID, role string) (*dto.PictureCollectionResponse, error)
	GetMessages(userID, role string) (*dto.MessageCollectionResponse, error)
	GetTreats(userID, role string) (*dto.TreatCollectionResponse, error)

	AddPicture(req dto.AddPictureRequest) (*dto.PictureResponse, error)
	UpdatePicture(id string, req dto.UpdatePictureRequest) (*dto.PictureResponse, error)
	DeletePicture(id string) error
	ReorderPictures(req dto.ReorderRequest) error
	SetPictureBlob(id, objectKey, url string) error

	AddMessage(req dto.AddMessageRequest) (*dto.MessageResponse, error)
	UpdateMessage(id string, req dto.UpdateMessageRequest) (*dto.MessageResponse, error)
	DeleteMessage(id string) error
	ReorderMessages(req dto.ReorderRequest) error

	AddTreat(req dto.AddTreatRequest) (*dto.TreatResponse, error)
	UpdateTreat(id string, req dto.UpdateTreatRequest) (*dto.TreatResponse, error)
	DeleteTreat(id string) error
	ReorderTreats(req dto.ReorderRequest) error
}

type UnlockServiceInterface interface {
	HandleWin(ctx context.Context, userID, sessionID string, req dto.WinRequest) (*dto.WinResponse, error)
	GetCounts(userID string) (*dto.UnlockCountDTO, error)
	ListGames() []dto.GameInfo
	WinMessage() dto.WinMessageResponse
	ResetProgress(ctx context.Context, sessionID string) error
}

type MediaServiceInterface interface {
	UploadPictureImage(pictureID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
}
