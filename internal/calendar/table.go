package calendar

import "github.com/flight-search/flight-normalization-service/internal/domain"

// defaultPeriods is the built-in GoWild blackout table. Periods are listed in
// chronological order and are inclusive on both ends.
var defaultPeriods = []domain.BlackoutPeriod{
	{StartDate: "2024-01-01", EndDate: "2024-01-01", Description: "New Year's Day"},
	{StartDate: "2024-01-04", EndDate: "2024-01-07", Description: "New Year return travel"},
	{StartDate: "2024-01-12", EndDate: "2024-01-15", Description: "Martin Luther King Jr. Day weekend"},
	{StartDate: "2024-02-15", EndDate: "2024-02-19", Description: "Presidents' Day weekend"},
	{StartDate: "2024-03-08", EndDate: "2024-03-10", Description: "Spring break"},
	{StartDate: "2024-03-15", EndDate: "2024-03-17", Description: "Spring break"},
	{StartDate: "2024-03-22", EndDate: "2024-03-24", Description: "Spring break"},
	{StartDate: "2024-03-29", EndDate: "2024-04-01", Description: "Easter weekend"},
	{StartDate: "2024-05-23", EndDate: "2024-05-27", Description: "Memorial Day weekend"},
	{StartDate: "2024-07-03", EndDate: "2024-07-08", Description: "Independence Day"},
	{StartDate: "2024-08-29", EndDate: "2024-09-02", Description: "Labor Day weekend"},
	{StartDate: "2024-10-11", EndDate: "2024-10-14", Description: "Columbus Day weekend"},
	{StartDate: "2024-11-26", EndDate: "2024-11-26", Description: "Thanksgiving"},
	{StartDate: "2024-11-30", EndDate: "2024-12-02", Description: "Thanksgiving return travel"},
	{StartDate: "2024-12-21", EndDate: "2024-12-22", Description: "Christmas travel"},
	{StartDate: "2024-12-26", EndDate: "2024-12-29", Description: "Christmas return travel"},
	{StartDate: "2025-01-01", EndDate: "2025-01-01", Description: "New Year's Day"},
	{StartDate: "2025-01-04", EndDate: "2025-01-05", Description: "New Year return travel"},
	{StartDate: "2025-01-16", EndDate: "2025-01-20", Description: "Martin Luther King Jr. Day weekend"},
	{StartDate: "2025-02-13", EndDate: "2025-02-17", Description: "Presidents' Day weekend"},
	{StartDate: "2025-03-14", EndDate: "2025-03-16", Description: "Spring break"},
	{StartDate: "2025-03-21", EndDate: "2025-03-23", Description: "Spring break"},
	{StartDate: "2025-04-18", EndDate: "2025-04-21", Description: "Easter weekend"},
	{StartDate: "2025-05-22", EndDate: "2025-05-26", Description: "Memorial Day weekend"},
	{StartDate: "2025-07-03", EndDate: "2025-07-07", Description: "Independence Day"},
	{StartDate: "2025-08-28", EndDate: "2025-09-01", Description: "Labor Day weekend"},
	{StartDate: "2025-10-09", EndDate: "2025-10-13", Description: "Columbus Day weekend"},
	{StartDate: "2025-11-25", EndDate: "2025-11-25", Description: "Thanksgiving"},
	{StartDate: "2025-11-29", EndDate: "2025-12-01", Description: "Thanksgiving return travel"},
	{StartDate: "2025-12-20", EndDate: "2025-12-21", Description: "Christmas travel"},
	{StartDate: "2025-12-26", EndDate: "2025-12-28", Description: "Christmas return travel"},
	{StartDate: "2026-01-01", EndDate: "2026-01-01", Description: "New Year's Day"},
	{StartDate: "2026-01-03", EndDate: "2026-01-04", Description: "New Year return travel"},
	{StartDate: "2026-01-15", EndDate: "2026-01-19", Description: "Martin Luther King Jr. Day weekend"},
	{StartDate: "2026-02-12", EndDate: "2026-02-16", Description: "Presidents' Day weekend"},
	{StartDate: "2026-03-13", EndDate: "2026-03-15", Description: "Spring break"},
	{StartDate: "2026-03-20", EndDate: "2026-03-22", Description: "Spring break"},
	{StartDate: "2026-04-02", EndDate: "2026-04-06", Description: "Easter weekend"},
	{StartDate: "2026-05-21", EndDate: "2026-05-25", Description: "Memorial Day weekend"},
	{StartDate: "2026-07-02", EndDate: "2026-07-06", Description: "Independence Day"},
	{StartDate: "2026-09-03", EndDate: "2026-09-07", Description: "Labor Day weekend"},
	{StartDate: "2026-10-08", EndDate: "2026-10-12", Description: "Columbus Day weekend"},
	{StartDate: "2026-11-24", EndDate: "2026-11-24", Description: "Thanksgiving"},
	{StartDate: "2026-11-28", EndDate: "2026-11-30", Description: "Thanksgiving return travel"},
	{StartDate: "2026-12-19", EndDate: "2026-12-20", Description: "Christmas travel"},
	{StartDate: "2026-12-26", EndDate: "2026-12-28", Description: "Christmas return travel"},
}
