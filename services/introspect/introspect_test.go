package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"path/filepath"
	"testing"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	gmssql "github.com/dolthub/go-mysql-server/sql"
	"github.com/dolthub/go-mysql-server/sql/types"
	vtmysql "github.com/dolthub/vitess/go/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbvaultapi/models"

	_ "github.com/mattn/go-sqlite3"
)

func getFreePort(t *testing.T) int {
	t.Helper()
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	require.NoError(t, err)
	l, err := net.ListenTCP("tcp", addr)
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

// startMySQLServer runs a temporary in-memory MySQL server holding an
// "inventory" database with two tables. Returns the listen port.
func startMySQLServer(t *testing.T) int {
	t.Helper()

	db := memory.NewDatabase("inventory")

	productSchema := gmssql.NewPrimaryKeySchema(gmssql.Schema{
		{Name: "id", Type: types.Int32, Source: "products", Nullable: false, PrimaryKey: true},
		{Name: "name", Type: types.Text, Source: "products", Nullable: false},
		{Name: "description", Type: types.Text, Source: "products", Nullable: true},
	})
	products := memory.NewTable(db, "products", productSchema, db.GetForeignKeyCollection())
	db.AddTable("products", products)

	orderSchema := gmssql.NewPrimaryKeySchema(gmssql.Schema{
		{Name: "id", Type: types.Int32, Source: "orders", Nullable: false, PrimaryKey: true},
		{Name: "product_id", Type: types.Int32, Source: "orders", Nullable: false},
		{Name: "quantity", Type: types.Int32, Source: "orders", Nullable: true},
	})
	orders := memory.NewTable(db, "orders", orderSchema, db.GetForeignKeyCollection())
	db.AddTable("orders", orders)

	provider := memory.NewDBProvider(db)
	engine := sqle.NewDefault(provider)

	port := getFreePort(t)
	cfg := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}
	sessionBuilder := func(ctx context.Context, conn *vtmysql.Conn, addr string) (gmssql.Session, error) {
		return memory.NewSession(gmssql.NewBaseSession(), provider), nil
	}
	s, err := server.NewServer(cfg, engine, sessionBuilder, nil)
	require.NoError(t, err)

	go func() {
		_ = s.Start()
	}()
	t.Cleanup(func() {
		_ = s.Close()
	})

	// Poll server readiness with timeout to prevent indefinite blocking
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", fmt.Sprintf("localhost:%d", port), 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return port
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("in-memory MySQL server did not start on port %d", port)
	return 0
}

func mysqlCredential(port int) *models.DBCredential {
	return &models.DBCredential{
		DatabaseEngine: "mysql",
		DatabaseName:   "inventory",
		Host:           "127.0.0.1",
		DBUser:         "root",
		Port:           port,
		Password:       "",
	}
}

func TestGetSchemaMySQL(t *testing.T) {
	port := startMySQLServer(t)

	schema, err := GetSchema(context.Background(), mysqlCredential(port))
	require.NoError(t, err)
	require.NotNil(t, schema)

	assert.Equal(t, "inventory", schema.DatabaseName)
	require.Len(t, schema.Tables, 2)
	assert.Equal(t, "orders", schema.Tables[0].TableName)
	assert.Equal(t, "products", schema.Tables[1].TableName)

	products := schema.Tables[1]
	require.Len(t, products.Columns, 3)
	assert.Equal(t, "id", products.Columns[0].Name)
	assert.False(t, products.Columns[0].Nullable)
	assert.NotEmpty(t, products.Columns[0].Type)
	assert.Equal(t, "description", products.Columns[2].Name)
	assert.True(t, products.Columns[2].Nullable)
}

func TestFindTableMySQL(t *testing.T) {
	port := startMySQLServer(t)

	table, err := FindTable(context.Background(), mysqlCredential(port), "orders")
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.Equal(t, "orders", table.TableName)
	require.Len(t, table.Columns, 3)
	assert.Equal(t, "product_id", table.Columns[1].Name)
}

func TestFindTableAbsentReturnsNil(t *testing.T) {
	port := startMySQLServer(t)

	table, err := FindTable(context.Background(), mysqlCredential(port), "no_such_table")
	require.NoError(t, err)
	assert.Nil(t, table)
}

func TestGetSchemaUnreachableDatabase(t *testing.T) {
	// A freshly allocated free port has no listener behind it.
	cred := mysqlCredential(getFreePort(t))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	schema, err := GetSchema(ctx, cred)
	assert.Error(t, err)
	assert.Nil(t, schema)
}

func TestOpenUnsupportedEngine(t *testing.T) {
	cred := &models.DBCredential{DatabaseEngine: "oracle"}

	_, err := GetSchema(context.Background(), cred)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database engine")
}

func TestGetSchemaSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE widgets (
		id INTEGER PRIMARY KEY,
		label TEXT NOT NULL,
		note TEXT DEFAULT 'none'
	)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cred := &models.DBCredential{
		DatabaseEngine: "sqlite",
		DatabaseName:   path,
	}

	schema, err := GetSchema(context.Background(), cred)
	require.NoError(t, err)
	require.Len(t, schema.Tables, 1)

	widgets := schema.Tables[0]
	assert.Equal(t, "widgets", widgets.TableName)
	require.Len(t, widgets.Columns, 3)

	label := widgets.Columns[1]
	assert.Equal(t, "label", label.Name)
	assert.False(t, label.Nullable)
	assert.Nil(t, label.Default)

	note := widgets.Columns[2]
	assert.Equal(t, "note", note.Name)
	assert.True(t, note.Nullable)
	require.NotNil(t, note.Default)
	assert.Equal(t, "'none'", *note.Default)
}
