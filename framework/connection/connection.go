package connection

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/bq-monitor/logger"
)

const (
	// CtxBigqueryKey is how bigquery connections are stored/retrieved.
	CtxBigqueryKey = "app-bigquery"
)

type Connection struct {
	*BigQueryClient
}

// NewConnection initializes the warehouse clients necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging, bqProjects ...string) (*Connection, error) {
	bq, err := NewBigQuery(ctx, log, bqProjects)
	if err != nil {
		return nil, err
	}

	return &Connection{
		bq,
	}, nil
}

// Bigquery returns a bigquery connection that was stored in context.
// It returns by default a bigquery connection, if there was not one in the context.
func (c *Connection) Bigquery(ctx context.Context) *bigquery.Client {
	if bq, ok := ctx.Value(CtxBigqueryKey).(*bigquery.Client); ok {
		return bq
	}

	return c.bq
}

// BigqueryForProject returns a bigquery client associated with that project.
// If the project is not in the list, the default bq client is returned and the
// second return argument set to false.
func (c *Connection) BigqueryForProject(projectID string) (*bigquery.Client, bool) {
	if bq, ok := c.projectsBQ[projectID]; ok {
		return bq, true
	}

	return c.bq, false
}

// MonitoredProjects returns the project ids that have a dedicated bigquery
// client, in no particular order.
func (c *Connection) MonitoredProjects() []string {
	projects := make([]string, 0, len(c.projectsBQ))
	for projectID := range c.projectsBQ {
		projects = append(projects, projectID)
	}

	return projects
}

// BigqueryWithContext stores under gin context, a bigquery connection.
func (c *Connection) BigqueryWithContext(ctx *gin.Context) {
	ctx.Set(CtxBigqueryKey, c.bq)
}

type BigQueryFromContextFun = func(ctx context.Context) *bigquery.Client
