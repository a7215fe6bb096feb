package render

// DefaultMessages returns the built-in labels for every locale the kit ships.
// Callers may extend the returned maps before building a translator.
func DefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"fr": {
			"status.active":               "Actif",
			"status.inactive":             "Inactif",
			"status.pending":              "En attente",
			"status.completed":            "Terminé",
			"status.done":                 "Terminé",
			"status.in_progress":          "En cours",
			"status.todo":                 "À faire",
			"status.cancelled":            "Annulé",
			"status.archived":             "Archivé",
			"priority.low":                "Basse",
			"priority.medium":             "Moyenne",
			"priority.high":               "Haute",
			"priority.urgent":             "Urgente",
			"table.empty":                 "Aucune donnée disponible",
			"pagination.previous":         "Précédent",
			"pagination.next":             "Suivant",
			"pagination.summary":          "Page %d sur %d",
			"pagination.page":             "Page",
			"pagination.of":               "sur",
			"pagination.label":            "Pagination",
			"banner.cookie.accept":        "Accepter",
			"banner.cookie.decline":       "Refuser",
			"banner.countdown.days":       "j",
			"footer.newsletter.email":     "Votre email",
			"footer.newsletter.subscribe": "S'inscrire",
			"card.pricing.popular":        "Plus populaire",
			"common.close":                "Fermer",
			"navigation.breadcrumb":       "Fil d'Ariane",
			"form.errors.summary":         "Veuillez corriger les erreurs suivantes",
			"form.required":               "obligatoire",
		},
		"en": {
			"status.active":               "Active",
			"status.inactive":             "Inactive",
			"status.pending":              "Pending",
			"status.completed":            "Completed",
			"status.done":                 "Done",
			"status.in_progress":          "In progress",
			"status.todo":                 "To do",
			"status.cancelled":            "Cancelled",
			"status.archived":             "Archived",
			"priority.low":                "Low",
			"priority.medium":             "Medium",
			"priority.high":               "High",
			"priority.urgent":             "Urgent",
			"table.empty":                 "No data available",
			"pagination.previous":         "Previous",
			"pagination.next":             "Next",
			"pagination.summary":          "Page %d of %d",
			"pagination.page":             "Page",
			"pagination.of":               "of",
			"pagination.label":            "Pagination",
			"banner.cookie.accept":        "Accept",
			"banner.cookie.decline":       "Decline",
			"banner.countdown.days":       "d",
			"footer.newsletter.email":     "Your email",
			"footer.newsletter.subscribe": "Subscribe",
			"card.pricing.popular":        "Most popular",
			"common.close":                "Close",
			"navigation.breadcrumb":       "Breadcrumb",
			"form.errors.summary":         "Please fix the following errors",
			"form.required":               "required",
		},
	}
}
