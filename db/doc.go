// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open picks the driver from the configured type:

	conn, err := db.Open("sqlite", "council.db")          // modernc.org/sqlite
	conn, err := db.Open("postgres", "postgres://...")    // github.com/lib/pq

SQLite connections are limited to one open connection.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both drivers.

# Tables

  - feedback: feedback, initiative and question submissions
  - news: council news items

Poll votes are never stored; they live in the visitor's session.
*/
package db
