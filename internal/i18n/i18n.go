// Package i18n provides the static UI string tables. Lookup is a pure
// function with an explicit fallback chain: selected language, then English,
// then the raw key.
package i18n

import "github.com/habitkit/habitkit/internal/models"

// T resolves key for the given language.
func T(lang models.Language, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[models.LanguageEnglish][key]; ok {
		return s
	}
	return key
}

var translations = map[models.Language]map[string]string{
	models.LanguageEnglish: {
		"dashboard":               "Dashboard",
		"habits":                  "Habits",
		"analytics":               "Analytics",
		"coach":                   "AI Coach",
		"settings":                "Settings",
		"greetingMorning":         "Good Morning!",
		"greetingBack":            "Welcome Back!",
		"dailyGoal":               "Daily Goal",
		"todaysFocus":             "Today's Focus",
		"noHabitsToday":           "No habits set for today. Go to the Habits tab to add one!",
		"dailyCheckin":            "Daily Check-in",
		"howFeeling":              "How are you feeling?",
		"quickNote":               "Quick Note",
		"newHabit":                "New Habit",
		"createHabit":             "Create New Habit",
		"title":                   "Title",
		"goal":                    "Goal",
		"category":                "Category",
		"startTracking":           "Start Tracking",
		"draftSaved":              "Draft auto-saved",
		"cancel":                  "Cancel",
		"delete":                  "Delete",
		"checkIn":                 "Check-in",
		"done":                    "Done",
		"streak":                  "Streak",
		"days":                    "days",
		"totalWins":               "Total Wins",
		"weeklyAvg":               "Weekly Avg",
		"bestStreak":              "Best Streak",
		"completionVsMood":        "Completion vs. Mood",
		"habitPerformance":        "Habit Performance",
		"coachInsight":            "Coach's Insight",
		"profile":                 "Profile & Account",
		"general":                 "General Preferences",
		"aiPersonality":           "AI Personality",
		"privacy":                 "Privacy & Data",
		"language":                "Language",
		"notifications":           "Notifications",
		"pushNotifs":              "Push Notifications",
		"habitReminders":          "Habit Reminders",
		"exportData":              "Export Data",
		"resetApp":                "Reset App",
		"changeAvatar":            "Change Avatar",
		"startTimer":              "Start",
		"stopTimer":               "Stop",
		"timeSpent":               "Time Spent",
		"mins":                    "mins",
		"details":                 "Details",
		"back":                    "Back",
		"totalTime":               "Total Time",
		"history":                 "History",
		"seconds":                 "s",
		"minutes":                 "m",
		"hours":                   "h",
		"noData":                  "No data yet",
		"discard":                 "Discard Draft",
		"saveDraft":               "Save Draft",
		"close":                   "Close",
		"generateAI":              "Generate with AI",
		"avatarPromptPlaceholder": "e.g., A futuristic cyberpunk fox",
		"generating":              "Generating...",
		"tryAgain":                "Try Again",
		"save":                    "Save",
		"skip":                    "Skip",
		"enterDisplayName":        "Enter display name",
	},
	models.LanguageRussian: {
		"dashboard":               "Дашборд",
		"habits":                  "Привычки",
		"analytics":               "Аналитика",
		"coach":                   "AI Коуч",
		"settings":                "Настройки",
		"greetingMorning":         "Доброе утро!",
		"greetingBack":            "С возвращением!",
		"dailyGoal":               "Цель дня",
		"todaysFocus":             "Сегодняшний фокус",
		"noHabitsToday":           "На сегодня привычек нет. Добавьте новую во вкладке Привычки!",
		"dailyCheckin":            "Ежедневный отчет",
		"howFeeling":              "Как самочувствие?",
		"quickNote":               "Заметка",
		"newHabit":                "Новая привычка",
		"createHabit":             "Создать привычку",
		"title":                   "Название",
		"goal":                    "Цель",
		"category":                "Категория",
		"startTracking":           "Начать отслеживать",
		"draftSaved":              "Черновик сохранен",
		"cancel":                  "Отмена",
		"delete":                  "Удалить",
		"checkIn":                 "Отметить",
		"done":                    "Готово",
		"streak":                  "Серия",
		"days":                    "дн.",
		"totalWins":               "Всего побед",
		"weeklyAvg":               "Среднее за неделю",
		"bestStreak":              "Лучшая серия",
		"completionVsMood":        "Выполнение vs Настроение",
		"habitPerformance":        "Эффективность привычек",
		"coachInsight":            "Инсайт от Коуча",
		"profile":                 "Профиль и Аккаунт",
		"general":                 "Общие настройки",
		"aiPersonality":           "Личность AI",
		"privacy":                 "Приватность и Данные",
		"language":                "Язык",
		"notifications":           "Уведомления",
		"pushNotifs":              "Push-уведомления",
		"habitReminders":          "Напоминания",
		"exportData":              "Экспорт данных",
		"resetApp":                "Сбросить данные",
		"changeAvatar":            "Изменить аватар",
		"startTimer":              "Старт",
		"stopTimer":               "Стоп",
		"timeSpent":               "Время",
		"mins":                    "мин",
		"details":                 "Подробнее",
		"back":                    "Назад",
		"totalTime":               "Всего времени",
		"history":                 "История",
		"seconds":                 "с",
		"minutes":                 "м",
		"hours":                   "ч",
		"noData":                  "Нет данных",
		"discard":                 "Удалить черновик",
		"saveDraft":               "Сохранить",
		"close":                   "Закрыть",
		"generateAI":              "Сгенерировать AI",
		"avatarPromptPlaceholder": "например, Киберпанк лиса",
		"generating":              "Генерация...",
		"tryAgain":                "Попробовать снова",
		"save":                    "Сохранить",
		"skip":                    "Пропустить",
		"enterDisplayName":        "Введите имя",
	},
	models.LanguageUkrainian: {
		"dashboard":               "Дашборд",
		"habits":                  "Звички",
		"analytics":               "Аналітика",
		"coach":                   "AI Коуч",
		"settings":                "Налаштування",
		"greetingMorning":         "Доброго ранку!",
		"greetingBack":            "З поверненням!",
		"dailyGoal":               "Ціль дня",
		"todaysFocus":             "Сьогоднішній фокус",
		"noHabitsToday":           "На сьогодні звичок немає. Додайте нову у вкладці Звички!",
		"dailyCheckin":            "Щоденний звіт",
		"howFeeling":              "Як самопочуття?",
		"quickNote":               "Нотатка",
		"newHabit":                "Нова звичка",
		"createHabit":             "Створити звичку",
		"title":                   "Назва",
		"goal":                    "Мета",
		"category":                "Категорія",
		"startTracking":           "Почати відстеження",
		"draftSaved":              "Чернетку збережено",
		"cancel":                  "Скасувати",
		"delete":                  "Видалити",
		"checkIn":                 "Відмітити",
		"done":                    "Готово",
		"streak":                  "Серія",
		"days":                    "дн.",
		"totalWins":               "Всього перемог",
		"weeklyAvg":               "Середнє за тиждень",
		"bestStreak":              "Краща серія",
		"completionVsMood":        "Виконання vs Настрій",
		"habitPerformance":        "Ефективність звичок",
		"coachInsight":            "Інсайт від Коуча",
		"profile":                 "Профіль та Акаунт",
		"general":                 "Загальні налаштування",
		"aiPersonality":           "Особистість AI",
		"privacy":                 "Приватність та Дані",
		"language":                "Мова",
		"notifications":           "Сповіщення",
		"pushNotifs":              "Push-сповіщення",
		"habitReminders":          "Нагадування",
		"exportData":              "Експорт даних",
		"resetApp":                "Скинути дані",
		"changeAvatar":            "Змінити аватар",
		"startTimer":              "Старт",
		"stopTimer":               "Стоп",
		"timeSpent":               "Час",
		"mins":                    "хв",
		"details":                 "Детальніше",
		"back":                    "Назад",
		"totalTime":               "Всього часу",
		"history":                 "Історія",
		"seconds":                 "с",
		"minutes":                 "хв",
		"hours":                   "год",
		"noData":                  "Немає даних",
		"discard":                 "Видалити чернетку",
		"saveDraft":               "Зберегти",
		"close":                   "Закрити",
		"generateAI":              "Згенерувати AI",
		"avatarPromptPlaceholder": "наприклад, Кіберпанк лисиця",
		"generating":              "Генерація...",
		"tryAgain":                "Спробувати ще",
		"save":                    "Зберегти",
		"skip":                    "Пропустити",
		"enterDisplayName":        "Введіть ім'я",
	},
}
