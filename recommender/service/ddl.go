package service

import (
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/bq-monitor/recommender/dal"
)

// renderDDL renders a referenced table's schema as a DDL statement. Views
// reproduce their defining query; tables list column names and types, with
// partitioning and clustering noted for the model's benefit.
func renderDDL(ref dal.TableRef, md *bigquery.TableMetadata) string {
	if md.ViewQuery != "" {
		return fmt.Sprintf("CREATE OR REPLACE VIEW `%s` AS\n%s", ref.FQN(), md.ViewQuery)
	}

	columns := make([]string, 0, len(md.Schema))
	for _, field := range md.Schema {
		columns = append(columns, fmt.Sprintf("  `%s` %s", field.Name, field.Type))
	}

	ddl := fmt.Sprintf("CREATE TABLE `%s` (\n%s\n)", ref.FQN(), strings.Join(columns, ",\n"))

	if md.TimePartitioning != nil {
		field := md.TimePartitioning.Field
		if field == "" {
			field = "_PARTITIONTIME"
		}

		ddl += fmt.Sprintf("\n-- partitioned by %s (%s)", field, md.TimePartitioning.Type)
	}

	if md.Clustering != nil && len(md.Clustering.Fields) > 0 {
		ddl += fmt.Sprintf("\n-- clustered by %s", strings.Join(md.Clustering.Fields, ", "))
	}

	return ddl
}
