package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	"streamzone/pkg/database"
	"streamzone/pkg/errno"
)

// RequireDatabase turns away data requests while the database connection is
// down. The server itself stays up so / and /health keep answering.
func RequireDatabase(db *database.Database) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !db.Ready() {
			c.JSON(errno.DBUnavailableErr.StatusCode, utils.H{
				"code":    errno.DBUnavailableErr.ErrCode,
				"message": errno.DBUnavailableErr.ErrMsg,
				"data":    nil,
			})
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
