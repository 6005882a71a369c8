// Package types defines the Store contract, the Person, Car, and RentalOrder
// entity types with their field validators and row codecs, and the standard
// errors shared by the carbnb storage backends and the fleet service.
package types
