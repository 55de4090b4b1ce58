package main

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/meikuraledutech/route"
)

// newApp builds the HTTP application. CORS is permissive because the
// graph editor runs in the browser on a different origin.
func newApp(store route.HistoryStore, logger *slog.Logger) *fiber.App {
	app := fiber.New()
	app.Use(cors.New())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ── Route computation ─────────────────────────────────────────────
	app.Post("/calculate-route", func(c fiber.Ctx) error {
		var req route.Request
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		result, err := route.Solve(req)
		switch {
		case errors.Is(err, route.ErrUnknownAlgorithm),
			errors.Is(err, route.ErrUnknownWeightPolicy),
			errors.Is(err, route.ErrUnknownNode),
			errors.Is(err, route.ErrBadEdgeWeight):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case err != nil:
			logger.Error("solve failed", "start", req.Start, "end", req.End, "error", err)
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		logger.Info("route solved",
			"start", req.Start, "end", req.End,
			"algorithm", req.Algorithm, "weightType", req.WeightType,
			"success", result.Success, "steps", len(result.Steps))
		return c.JSON(result)
	})

	// ── History ───────────────────────────────────────────────────────
	app.Post("/history", func(c fiber.Ctx) error {
		var entry route.HistoryEntry
		if err := c.Bind().JSON(&entry); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.Append(c.Context(), &entry)
		if err != nil {
			logger.Error("history append failed", "error", err)
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/history", func(c fiber.Ctx) error {
		entries, err := store.List(c.Context())
		if err != nil {
			logger.Error("history list failed", "error", err)
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"history": entries})
	})

	app.Delete("/history", func(c fiber.Ctx) error {
		if err := store.Clear(c.Context()); err != nil {
			logger.Error("history clear failed", "error", err)
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	return app
}
