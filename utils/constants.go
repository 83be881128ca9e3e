package utils

// Response message constants shared across controllers.
const (
	AppTitle = "dbvaultapi"

	Success  = "success"
	NotFound = "Not Found"

	UserRegisteredSuccessfully = "User Registered Successfully"
	EmailAlreadyExist          = "Email already exist"
	IncorrectEmailPassword     = "Incorrect Email or Password"
	InvalidCredentials         = "Invalid Credentials"

	CredentialsCreated  = "Database credentials created successfully"
	NoCredentialsFound  = "No database credentials found"
	CredentialsNotFound = "Database credentials not found"
)
