package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driving"
)

// sampleNotes are representative notes across the built-in categories,
// used to populate an empty library for evaluation.
var sampleNotes = []driving.NoteInput{
	{
		Title:   "Team Meeting Notes Q4",
		Content: "Discussed quarterly goals, budget allocation, and new project timelines. Action items: finalize requirements by next week, schedule follow-up with engineering team.",
	},
	{
		Title:   "Project Status Update",
		Content: "The new feature development is on track. Completed user authentication, working on payment integration. Expected completion in 2 weeks.",
	},
	{
		Title:   "Business Idea: Food Delivery",
		Content: "Local organic food delivery service focusing on zero-waste packaging. Target market: environmentally conscious millennials. Potential partnerships with local farms.",
	},
	{
		Title:   "Morning Thoughts",
		Content: "Realized I need to focus more on deep work sessions. Planning to block 2-hour chunks in the morning for important tasks without distractions.",
	},
	{
		Title:   "Python Best Practices",
		Content: "Key takeaways: use list comprehensions for readability, follow PEP 8, write docstrings, use virtual environments, implement proper error handling.",
	},
	{
		Title:   "Machine Learning Notes",
		Content: "Supervised learning requires labeled data. Common algorithms: linear regression, decision trees, neural networks. Feature engineering is crucial for model performance.",
	},
	{
		Title:   "Week Priorities",
		Content: "1. Complete project proposal, 2. Review code from team, 3. Prepare presentation, 4. Schedule dentist appointment, 5. Update portfolio website.",
	},
	{
		Title:   "Meal Prep Ideas",
		Content: "Sunday prep: grilled chicken, roasted vegetables, quinoa, salad ingredients. Portion into containers. Snacks: nuts, fruits, yogurt.",
	},
	{
		Title:   "Monthly Budget Review",
		Content: "Income: salary + freelance. Expenses: rent, utilities, groceries, transport, subscriptions. Savings goal: 20% of income. Investment: index funds.",
	},
	{
		Title:   "Database Design Principles",
		Content: "Normalization reduces redundancy. Use indexes for query performance. Consider read vs write optimization. Document schema decisions.",
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the library with sample notes",
	Long:  `Adds a set of sample notes covering the built-in tag categories, for trying out search and stats on a fresh library.`,
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	for _, note := range sampleNotes {
		if _, err := libraryService.AddNote(cmd.Context(), note); err != nil {
			return fmt.Errorf("seeding %q: %w", note.Title, err)
		}
	}

	cmd.Printf("Seeded %d sample note(s)\n", len(sampleNotes))
	return nil
}
