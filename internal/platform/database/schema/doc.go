// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names of the pre-existing wedding
// schema so that SQL text is assembled from one source of truth.
//
// The schema is not created or migrated by this module.
package schema
