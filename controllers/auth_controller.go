package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yunseok-map/all-food-map/entity"
	"github.com/yunseok-map/all-food-map/pkg/resp"
	"github.com/yunseok-map/all-food-map/repository"
	"github.com/yunseok-map/all-food-map/utils"
)

// AuthController implements the anonymous get-or-create flow. A first
// call without credentials mints a device id + secret; later calls with
// the pair prove ownership and get a fresh token. The identity stays
// stable per device, which is all the interaction/review ownership rules
// need.
type AuthController struct {
	Users     *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(users *repository.UserRepository, secret string, ttl time.Duration) *AuthController {
	return &AuthController{Users: users, JWTSecret: secret, JWTTTL: ttl}
}

type AnonymousRequest struct {
	DeviceID     string `json:"deviceId"`
	DeviceSecret string `json:"deviceSecret"`
}

// POST /auth/anonymous
func (a *AuthController) Anonymous(c *gin.Context) {
	var req AnonymousRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}

	if req.DeviceID != "" {
		user, err := a.Users.FindByDeviceID(req.DeviceID)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if user != nil {
			if bcrypt.CompareHashAndPassword([]byte(user.SecretHash), []byte(req.DeviceSecret)) != nil {
				resp.Unauthorized(c, "invalid device credentials")
				return
			}
			token, err := utils.GenerateToken(user.ID, user.Role, a.JWTSecret, a.JWTTTL)
			if err != nil {
				resp.ServerError(c, err)
				return
			}
			resp.OK(c, gin.H{
				"token": token,
				"user":  gin.H{"id": user.ID, "deviceId": user.DeviceID, "role": user.Role},
			})
			return
		}
		// unknown device id falls through to a fresh identity
	}

	deviceID := uuid.NewString()
	secret := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.User{DeviceID: deviceID, SecretHash: string(hash), Role: "anon"}
	if err := a.Users.Create(&user); err != nil {
		resp.ServerError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	// the clear-text secret is returned exactly once
	resp.Created(c, gin.H{
		"token":        token,
		"deviceSecret": secret,
		"user":         gin.H{"id": user.ID, "deviceId": user.DeviceID, "role": user.Role},
	})
}
