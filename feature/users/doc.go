// Package users implements account management and the inventory write gate.
//
// Passwords are stored as bcrypt hashes. Roles are admin (manages users),
// user (edits inventory) and reader (view only). The service's
// AuthorizeWrite method is plugged into the inventory feature so readers
// cannot modify records.
//
// # HTTP Endpoints
//
//   - POST   /users/login      : verify credentials
//   - GET    /users            : list accounts
//   - POST   /users            : create an account (admin only)
//   - DELETE /users/:username  : remove an account (admin only)
package users
