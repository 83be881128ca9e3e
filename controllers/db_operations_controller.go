package controllers

import (
	"context"
	"net/http"

	"dbvaultapi/models"
	"dbvaultapi/pkg/logger"
	"dbvaultapi/services"
	"dbvaultapi/services/introspect"
	"dbvaultapi/utils"

	"github.com/gin-gonic/gin"
)

var credentialSrv services.CredentialService

// SetCredentialService initializes the credential service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetCredentialService(s services.CredentialService) {
	credentialSrv = s
}

// Introspection entry points, replaceable in tests.
var (
	getSchemaFn = introspect.GetSchema
	findTableFn = introspect.FindTable
)

// SetIntrospectFuncs overrides the schema introspection functions.
// Used for dependency injection in tests.
func SetIntrospectFuncs(
	getSchema func(context.Context, *models.DBCredential) (*introspect.DatabaseSchema, error),
	findTable func(context.Context, *models.DBCredential, string) (*introspect.TableInfo, error),
) {
	getSchemaFn = getSchema
	findTableFn = findTable
}

// CredentialCreateRequest is the request body for storing database credentials.
type CredentialCreateRequest struct {
	DatabaseEngine string `json:"database_engine" validate:"required"`
	DatabaseName   string `json:"database_name" validate:"required"`
	Host           string `json:"host" validate:"required"`
	DBUser         string `json:"db_user" validate:"required"`
	Port           int    `json:"port" validate:"required,gte=1,lte=9999"`
	Password       string `json:"password" validate:"required"`
}

// CreateDBCredentials stores new database credentials for the current user
// @Summary Create database credentials
// @Description Stores connection parameters for an external database in the current user's vault
// @Tags Database Operations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param credentials body CredentialCreateRequest true "Database credentials"
// @Success 201 {object} MessageResponse "Credentials created"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /db/create-credentials [post]
func createDBCredentials(c *gin.Context) {
	var req CredentialCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	user := currentUser(c)
	cred := models.DBCredential{
		DatabaseEngine: req.DatabaseEngine,
		DatabaseName:   req.DatabaseName,
		Host:           req.Host,
		DBUser:         req.DBUser,
		Port:           req.Port,
		Password:       req.Password,
	}

	logger.Debugf("Creating database credentials for user %s", user.ID)
	if _, err := credentialSrv.Create(c.Request.Context(), user.ID, cred); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{"message": utils.CredentialsCreated})
}

// GetAllDBCredentials lists the current user's stored credentials
// @Summary Get all database credentials
// @Description Lists every credential record owned by the current user
// @Tags Database Operations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DBCredential "Credential records"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 404 {object} ErrorResponse "No credentials found"
// @Router /db/get-all-credentials [get]
func getAllDBCredentials(c *gin.Context) {
	user := currentUser(c)

	creds, err := credentialSrv.GetAllForUser(c.Request.Context(), user.ID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, creds)
}

// GetDatabaseSchema introspects the schema of a stored database
// @Summary Get database schema
// @Description Opens a transient connection with the stored credentials and enumerates tables and columns
// @Tags Database Operations
// @Produce json
// @Security BearerAuth
// @Param database_id query string true "Credential record ID"
// @Success 200 {object} introspect.DatabaseSchema "Database schema"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 404 {object} ErrorResponse "Credentials not found"
// @Failure 500 {object} ErrorResponse "Target database unreachable"
// @Router /db/get-database-schema [get]
func getDatabaseSchema(c *gin.Context) {
	databaseID := c.Query("database_id")
	user := currentUser(c)

	cred, err := credentialSrv.GetOwned(c.Request.Context(), user.ID, databaseID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Introspecting schema of %s database %s for user %s",
		cred.DatabaseEngine, cred.DatabaseName, user.ID)
	schema, err := getSchemaFn(c.Request.Context(), cred)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, schema)
}

// SearchTable looks up one table in a stored database's schema
// @Summary Search for a table
// @Description Returns table info when the named table exists in the target database, null otherwise
// @Tags Database Operations
// @Produce json
// @Security BearerAuth
// @Param database_id query string true "Credential record ID"
// @Param table_name query string true "Table name to search for"
// @Success 200 {object} introspect.TableInfo "Table info or null"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 404 {object} ErrorResponse "Credentials not found"
// @Failure 500 {object} ErrorResponse "Target database unreachable"
// @Router /db/search-table [get]
func searchTable(c *gin.Context) {
	databaseID := c.Query("database_id")
	tableName := c.Query("table_name")
	user := currentUser(c)

	cred, err := credentialSrv.GetOwned(c.Request.Context(), user.ID, databaseID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	table, err := findTableFn(c.Request.Context(), cred, tableName)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, table)
}

// RegisterDBOperationRoutes registers the credential vault endpoints behind
// the auth middleware.
func RegisterDBOperationRoutes(r *gin.Engine) {
	db := r.Group("/db")
	db.Use(AuthMiddleware())
	{
		db.POST("/create-credentials", createDBCredentials)
		db.GET("/get-all-credentials", getAllDBCredentials)
		db.GET("/get-database-schema", getDatabaseSchema)
		db.GET("/search-table", searchTable)
	}
}
