package handler

import (
	"net/http"

	"vidtube/internal/delivery/api/response"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PlaylistHandlerParams holds dependencies for PlaylistHandler, injected by Fx.
type PlaylistHandlerParams struct {
	fx.In

	PlaylistUC usecase.PlaylistUsecase
}

// PlaylistHandler serves the playlist routes.
type PlaylistHandler struct {
	playlistUC usecase.PlaylistUsecase
}

// NewPlaylistHandler is the constructor for PlaylistHandler.
func NewPlaylistHandler(params PlaylistHandlerParams) *PlaylistHandler {
	return &PlaylistHandler{playlistUC: params.PlaylistUC}
}

// PlaylistRequest is the body of create and update.
type PlaylistRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Create stores a new playlist owned by the caller.
func (h *PlaylistHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	input, err := bindPlaylist(c)
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPlaylistResponse(playlist))
}

// Get returns one playlist.
func (h *PlaylistHandler) Get(c echo.Context) error {
	playlistID, err := uuidParam(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.Get(c.Request().Context(), playlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist))
}

// ListByUser returns the playlists of userId.
func (h *PlaylistHandler) ListByUser(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	playlists, err := h.playlistUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistResponses(playlists))
}

// Update replaces the name and description.
func (h *PlaylistHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	playlistID, err := uuidParam(c, "playlistId")
	if err != nil {
		return err
	}

	input, err := bindPlaylist(c)
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.Update(c.Request().Context(), userID, playlistID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist))
}

// Delete removes the playlist.
func (h *PlaylistHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	playlistID, err := uuidParam(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.playlistUC.Delete(c.Request().Context(), userID, playlistID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Playlist deleted")
}

// AddVideo appends videoId to playlistId.
func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	return h.changeVideos(c, h.playlistUC.AddVideo)
}

// RemoveVideo removes videoId from playlistId.
func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	return h.changeVideos(c, h.playlistUC.RemoveVideo)
}

func (h *PlaylistHandler) changeVideos(c echo.Context, change videoChange) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}
	playlistID, err := uuidParam(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := change(c.Request().Context(), userID, playlistID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist))
}

func bindPlaylist(c echo.Context) (usecase.PlaylistInput, error) {
	var req PlaylistRequest
	if err := c.Bind(&req); err != nil {
		return usecase.PlaylistInput{}, errors.Wrap(domainerrors.ErrBadRequest.WithMessage("Invalid playlist input"), err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return usecase.PlaylistInput{}, err
	}

	return usecase.PlaylistInput{Name: req.Name, Description: req.Description}, nil
}
