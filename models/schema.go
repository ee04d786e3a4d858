package models

// Schema describes the entity shapes for the admin viewer, mirroring what the
// stored documents look like on the wire.
func Schema() map[string]interface{} {
	return map[string]interface{}{
		"service": map[string]interface{}{
			"name":             "string, required",
			"description":      "string, optional",
			"duration_minutes": "integer, 10-600",
			"price":            "number, >= 0",
		},
		"stylist": map[string]interface{}{
			"name":        "string, required",
			"specialties": "list of strings",
			"bio":         "string, optional",
		},
		"customer": map[string]interface{}{
			"name":  "string, required",
			"phone": "string, required, unique",
			"email": "string, optional",
		},
		"appointment": map[string]interface{}{
			"customer_id":      "uuid",
			"service_id":       "uuid",
			"stylist_id":       "uuid",
			"start_time":       "timestamp (RFC 3339)",
			"end_time":         "timestamp (RFC 3339)",
			"duration_minutes": "integer, snapshot of the service duration",
			"notes":            "string, optional",
			"status":           "scheduled | confirmed | completed | cancelled",
		},
	}
}
