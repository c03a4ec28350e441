package handlers

import (
	"errors"
	"net/http"
	"strings"
	"tund/internal/db"
	"tund/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	creds *store.CredentialStore
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		creds: store.NewCredentialStore(db.DB),
	}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", gin.H{"Title": "Register - TUN'D"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	if username == "" || password == "" {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title": "Register - TUN'D", "Error": "Username and password are required", "Username": username,
		})
		return
	}
	if len(username) > 20 {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title": "Register - TUN'D", "Error": "Username must be 20 characters or fewer",
		})
		return
	}
	// Pure input validation, checked before the store is touched
	if password != confirm {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title": "Register - TUN'D", "Error": "Passwords must match", "Username": username,
		})
		return
	}

	user, err := h.creds.Register(username, password)
	if errors.Is(err, store.ErrUsernameTaken) {
		Render(c, http.StatusConflict, "auth/register.html", gin.H{
			"Title": "Register - TUN'D", "Error": "Username already exists", "Username": username,
		})
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not create your account, please try again")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Login - TUN'D"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.creds.Authenticate(username, password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		// Same message whether the username is unknown or the password wrong
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title": "Login - TUN'D", "Error": "Invalid username or password", "Username": username,
		})
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Login is unavailable right now, please try again")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}
