// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared
across handlers.

Request/response structs map one-to-one onto API endpoints and carry
JSON tags. Result types (ResultsResponse, MatrixResponse) mirror what
the condorcet package produces: the Movies slice fixes the candidate
order that matrix row/column indices refer to.
*/
package models
