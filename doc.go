// Package footprint provides a set of functions and types for keeping a
// personal carbon-footprint ledger. It is designed to be local-first and
// auditable, ensuring users have full control and transparency over their
// environmental data.
//
// The core functionalities include:
//   - Activity Tracking: Recording daily activities (transportation trips,
//     home energy usage, meals, and purchases) in an immutable,
//     chronological record.
//   - Emissions Calculation: Converting physical quantities (km, kWh, kg,
//     money spent) into kg of CO2-equivalent using an injected emissions
//     factor table, so regional factor sets can be swapped in.
//   - Reporting: Filtering the record by a rolling period (week, month,
//     year), aggregating emissions by category and sub-type, and rendering
//     impact reports with a comparison against typical footprints.
//   - Recommendations: Surfacing eco tips and sustainable product
//     suggestions ranked by the user's highest-emitting categories.
//   - Data Persistence: One human-readable JSON document per user,
//     rewritten atomically on every tracked activity.
//
// This package serves as the foundational logic for the `eco` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package footprint
