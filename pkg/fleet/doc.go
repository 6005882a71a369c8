// Package fleet implements the rental-fleet operations on top of a
// types.Store: validated construction of clients, cars, and rental orders,
// eager reference resolution into embedded copies, availability checking,
// integrity-guarded deletion, sequential order IDs, and revenue windows.
package fleet
