package handlers

import (
	"context"
	"fmt"
	"net/http"

	"najma_site_go/services"

	"github.com/labstack/echo/v4"
)

// counterAnimator drives every counter stream
var counterAnimator = services.NewCounterAnimator()

// CounterStreamHandler streams one statistic counting up from 0 as Server-Sent Events.
// Each step is a "tick" event carrying the display value; a final "done" event
// ends the stream. A client disconnect cancels the animation.
func CounterStreamHandler(c echo.Context) error {
	if services.SiteContent == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Site content not loaded")
	}
	stat, ok := services.SiteContent.Stat(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Counter not found")
	}

	end := services.CounterTarget(stat.End)
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	last := 0
	for value := range counterAnimator.Run(ctx, end) {
		last = value
		if err := writeEvent(res, "tick", services.FormatCounter(value, end)); err != nil {
			return nil
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	return writeEvent(res, "done", services.FormatCounter(last, end))
}

func writeEvent(res *echo.Response, event, data string) error {
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	res.Flush()
	return nil
}
