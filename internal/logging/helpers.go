package logging

import "context"

// update копирует logCtx из ctx, применяет fn и кладёт результат обратно.
func update(ctx context.Context, fn func(*logCtx)) context.Context {
	c, _ := ctx.Value(key).(logCtx)
	fn(&c)
	return context.WithValue(ctx, key, c)
}

// WithLogRequestID добавляет request ID в контекст.
func WithLogRequestID(ctx context.Context, requestID string) context.Context {
	return update(ctx, func(c *logCtx) { c.RequestID = requestID })
}

// WithLogRequestPath добавляет путь запроса в контекст.
func WithLogRequestPath(ctx context.Context, path string) context.Context {
	return update(ctx, func(c *logCtx) { c.Path = path })
}

// WithLogRequestMethod добавляет метод запроса в контекст.
func WithLogRequestMethod(ctx context.Context, method string) context.Context {
	return update(ctx, func(c *logCtx) { c.Method = method })
}

// WithLogRequestStatus добавляет статус ответа в контекст.
func WithLogRequestStatus(ctx context.Context, status int) context.Context {
	return update(ctx, func(c *logCtx) { c.Status = status })
}

// WithLogRequestDuration добавляет длительность запроса в контекст.
func WithLogRequestDuration(ctx context.Context, duration string) context.Context {
	return update(ctx, func(c *logCtx) { c.RequestDuration = duration })
}

// WithLogMode добавляет режим примера в контекст.
func WithLogMode(ctx context.Context, mode string) context.Context {
	return update(ctx, func(c *logCtx) { c.Mode = mode })
}

// WithLogSource добавляет тип генератора в контекст.
func WithLogSource(ctx context.Context, source string) context.Context {
	return update(ctx, func(c *logCtx) { c.Source = source })
}

// WithLogPass добавляет номер прохода (с единицы) в контекст.
func WithLogPass(ctx context.Context, pass int) context.Context {
	return update(ctx, func(c *logCtx) { c.Pass = pass })
}

// WithLogDraw добавляет номер выборки (с единицы) в контекст.
func WithLogDraw(ctx context.Context, draw int) context.Context {
	return update(ctx, func(c *logCtx) { c.Draw = draw })
}

// WithLogBagSize добавляет размер мешка в контекст.
func WithLogBagSize(ctx context.Context, size int) context.Context {
	return update(ctx, func(c *logCtx) { c.BagSize = size })
}

// WithLogItem добавляет выбранный элемент в контекст.
func WithLogItem(ctx context.Context, item string) context.Context {
	return update(ctx, func(c *logCtx) { c.Item = item })
}
