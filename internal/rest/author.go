package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-author-comment/domain"
	"github.com/Guyuepp/go-clean-author-comment/internal/rest/request"
	"github.com/Guyuepp/go-clean-author-comment/internal/rest/response"
)

// AuthorHandler  represent the httphandler for author
type AuthorHandler struct {
	Service domain.AuthorUsecase
}

func NewAuthorHandler(svc domain.AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{
		Service: svc,
	}
}

// Fetch will fetch every author with its comments
func (a *AuthorHandler) Fetch(c *gin.Context) {
	list, err := a.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Author, len(list))
	for i := range list {
		res[i] = response.NewAuthorFromDomain(&list[i])
	}
	c.JSON(http.StatusOK, res)
}

// GetByID will get author by given id
func (a *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	author, err := a.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewAuthorFromDomain(&author))
}

// Store will store the author and its comments by given request body
func (a *AuthorHandler) Store(c *gin.Context) {
	var req request.Author
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: bindingMessage(err)})
		return
	}

	author := req.ToDomain()
	author.ID = 0
	if err := a.Service.Store(c.Request.Context(), &author); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewAuthorFromDomain(&author))
}

// Update will overwrite the author given by the path id
func (a *AuthorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request.Author
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: bindingMessage(err)})
		return
	}
	req.ID = id

	author := req.ToDomain()
	if err := a.Service.Update(c.Request.Context(), &author); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete will delete the author and its comments
func (a *AuthorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
