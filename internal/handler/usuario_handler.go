package handler

import (
	"net/http"

	"compras/internal/service"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
)

type UsuarioHandler struct {
	usuarioService service.UsuarioService
}

// NewUsuarioHandler sets up the routing dependencies for user endpoints
func NewUsuarioHandler(usuarioService service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService}
}

// RegisterPublicRoutes binds the endpoints reachable without a token
func (h *UsuarioHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/users/login", h.Login)
}

// UsuarioGuards restrict who may change accounts. Empty slices leave the routes open.
type UsuarioGuards struct {
	Admin       []gin.HandlerFunc // account creation and activation
	SelfOrAdmin []gin.HandlerFunc // profile and password changes
}

// RegisterRoutes binds the protected user endpoints
func (h *UsuarioHandler) RegisterRoutes(router *gin.RouterGroup, guards UsuarioGuards) {
	users := router.Group("/users")
	{
		users.GET("", h.ListUsuarios)
		users.GET("/niveis-autorizacao", h.NiveisAutorizacao)
		users.GET("/:id", h.GetUsuario)

		admin := users.Group("", guards.Admin...)
		admin.POST("", h.CreateUsuario)
		admin.PATCH("/:id/status", h.UpdateStatus)

		owner := users.Group("", guards.SelfOrAdmin...)
		owner.PUT("/:id", h.UpdateUsuario)
		owner.PATCH("/:id/senha", h.ChangeSenha)
	}
}

// Login checks credentials and issues a token
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response{data=service.LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /api/users/login [post]
func (h *UsuarioHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.usuarioService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Falha na autenticação", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Login realizado com sucesso", res))
}

// ListUsuarios returns every user account
// @Summary      List users
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Usuario}
// @Router       /api/users [get]
func (h *UsuarioHandler) ListUsuarios(c *gin.Context) {
	list, err := h.usuarioService.List(c.Request.Context())
	if err != nil {
		respondError(c, "Falha ao listar usuários", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", list))
}

// GetUsuario returns one user
// @Summary      Get user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=model.Usuario}
// @Failure      404  {object}  response.Response
// @Router       /api/users/{id} [get]
func (h *UsuarioHandler) GetUsuario(c *gin.Context) {
	u, err := h.usuarioService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Usuário não encontrado", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("", u))
}

// CreateUsuario creates a user, deriving the access tier from the cargo
// @Summary      Create user
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateUsuarioRequest  true  "User payload"
// @Success      201      {object}  response.Response{data=model.Usuario}
// @Failure      400      {object}  response.Response
// @Router       /api/users [post]
func (h *UsuarioHandler) CreateUsuario(c *gin.Context) {
	var req service.CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.usuarioService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Falha ao criar usuário", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success("Usuário criado com sucesso", u))
}

// UpdateUsuario updates the fields that are sent
// @Summary      Update user
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "User ID"
// @Param        payload  body      service.UpdateUsuarioRequest  true  "Update payload"
// @Success      200      {object}  response.Response{data=model.Usuario}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/users/{id} [put]
func (h *UsuarioHandler) UpdateUsuario(c *gin.Context) {
	var req service.UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.usuarioService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Falha ao atualizar usuário", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Usuário atualizado com sucesso", u))
}

// UpdateStatus activates or deactivates a user
// @Summary      Activate or deactivate user
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "User ID"
// @Param        payload  body      service.UpdateUsuarioStatusRequest  true  "Active flag"
// @Success      200      {object}  response.Response{data=model.Usuario}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/users/{id}/status [patch]
func (h *UsuarioHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateUsuarioStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.usuarioService.SetActive(c.Request.Context(), c.Param("id"), *req.Ativo)
	if err != nil {
		respondError(c, "Falha ao atualizar usuário", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Status do usuário atualizado", u))
}

// ChangeSenha replaces a user's password
// @Summary      Change password
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "User ID"
// @Param        payload  body      service.ChangeSenhaRequest  true  "Current and new password"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /api/users/{id}/senha [patch]
func (h *UsuarioHandler) ChangeSenha(c *gin.Context) {
	var req service.ChangeSenhaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.usuarioService.ChangePassword(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, "Falha ao alterar senha", err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Senha alterada com sucesso", nil))
}

// NiveisAutorizacao lists access tiers, their cargos and approval authority
// @Summary      List authorization levels
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.NivelAutorizacao}
// @Router       /api/users/niveis-autorizacao [get]
func (h *UsuarioHandler) NiveisAutorizacao(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success("", h.usuarioService.NiveisAutorizacao()))
}
