package controllers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/betterspace/better-space-api/config"
	"github.com/betterspace/better-space-api/db"
	"github.com/betterspace/better-space-api/models"
	"github.com/betterspace/better-space-api/otp"
	"github.com/betterspace/better-space-api/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// issueOTP stores a fresh code for the account and emails it. Delivery
// failures are logged, not surfaced; the code stays valid either way.
func issueOTP(c *fiber.Ctx, account *models.Account) {
	code := utils.GenerateOTP()
	entry := otp.Entry{
		Code:     code,
		Email:    account.Email,
		UserID:   account.ID,
		UserType: string(account.Kind),
	}
	if err := otp.Codes.Set(c.Context(), string(account.Kind), account.ID, entry); err != nil {
		log.Printf("Failed to store OTP for %s %d: %v", account.Kind, account.ID, err)
		return
	}
	if err := utils.SendOTPEmail(account.Email, code); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", account.Email, err)
	}
}

// Register handles student and professional registration
func Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required"`
		UserType  string `json:"user_type" validate:"required"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name"`
	}

	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing required fields",
		})
	}

	if err := utils.ValidatePassword(input.Password); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": "Failed to hash password",
		})
	}

	fullName := strings.TrimSpace(input.FirstName + " " + input.LastName)

	kind, ok := models.ParseUserKind(input.UserType)
	if !ok || kind == models.KindAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid user type",
		})
	}

	var userID uint
	switch kind {
	case models.KindStudent:
		student := models.Student{FullName: fullName, Email: input.Email, Password: string(hashedPassword)}
		err = db.DB.Create(&student).Error
		userID = student.ID
	case models.KindProfessional:
		professional := models.Professional{
			FullName:           fullName,
			Email:              input.Email,
			Password:           string(hashedPassword),
			Category:           models.DefaultCategory,
			VerificationStatus: models.VerificationPending,
		}
		err = db.DB.Create(&professional).Error
		userID = professional.ID
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"status": "error", "message": "Email already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	issueOTP(c, &models.Account{Kind: kind, ID: userID, Email: input.Email})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":    "success",
		"message":   "User registered successfully. OTP sent to email.",
		"user_id":   userID,
		"user_type": kind,
	})
}

// Login checks credentials and issues a login OTP; login is only complete
// once the OTP is verified.
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Email and password required",
		})
	}

	account, err := models.FindAccountByEmail(db.DB, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error", "message": "Invalid credentials",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	// Professionals are locked out until an admin verifies them.
	if account.Kind == models.KindProfessional && account.VerificationStatus != models.VerificationVerified {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error",
			"message": fmt.Sprintf("Account verification is %s. Please wait for admin approval.",
				strings.ToLower(string(account.VerificationStatus))),
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error", "message": "Invalid credentials",
		})
	}

	issueOTP(c, account)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Login successful. OTP sent to your email.",
		"user": fiber.Map{
			"user_id":    account.ID,
			"email":      account.Email,
			"user_type":  account.Kind,
			"first_name": account.FirstName(),
			"last_name":  account.LastName(),
		},
	})
}

// VerifyOTP consumes a one-time code. The code is deleted on success, so a
// second verify with the same code fails.
func VerifyOTP(c *fiber.Ctx) error {
	type VerifyInput struct {
		UserID   uint   `json:"user_id" validate:"required"`
		UserType string `json:"user_type" validate:"required"`
		OTPCode  string `json:"otp_code" validate:"required"`
	}

	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing required fields",
		})
	}

	kind, ok := models.ParseUserKind(input.UserType)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid user type",
		})
	}

	consumed, err := otp.Codes.Consume(c.Context(), string(kind), input.UserID, input.OTPCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}
	if !consumed {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error", "message": "Invalid OTP",
		})
	}

	token, err := signToken(input.UserID, kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Email verified successfully",
		"token":   token,
	})
}

// ResendOTP regenerates the code for a user, invalidating any previous one.
func ResendOTP(c *fiber.Ctx) error {
	type ResendInput struct {
		UserID   uint   `json:"user_id" validate:"required"`
		UserType string `json:"user_type" validate:"required"`
	}

	input := new(ResendInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "User ID and type required",
		})
	}

	kind, ok := models.ParseUserKind(input.UserType)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid user type",
		})
	}

	account, err := models.FindAccountByID(db.DB, kind, input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": "error", "message": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	issueOTP(c, account)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "New OTP sent to your email",
	})
}

// GetUser returns public identity fields for any role.
func GetUser(c *fiber.Ctx) error {
	kind, ok := models.ParseUserKind(c.Query("user_type"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid user type",
		})
	}
	id, ok := queryID(c, "user_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing user_id parameter",
		})
	}

	account, err := models.FindAccountByID(db.DB, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": "error", "message": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": account})
}

// Me resolves the identity carried by the JWT issued at OTP verification.
func Me(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	kind, ok := models.ParseUserKind(fmt.Sprint(claims["user_type"]))
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error", "message": "Invalid token claims",
		})
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error", "message": "Invalid token claims",
		})
	}

	account, err := models.FindAccountByID(db.DB, kind, uint(id))
	if err != nil {
		return c.Status(errStatus(err)).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": account})
}

func signToken(userID uint, kind models.UserKind) (string, error) {
	claims := jwt.MapClaims{
		"id":        userID,
		"user_type": string(kind),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.C.JWTSecret))
}
